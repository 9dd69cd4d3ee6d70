// Command slicercheck verifies that a deployment can serve estimates: the
// slicer binary must execute and, when a URL is provided, the service must
// report ready. It is intended as a container health check.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os/exec"
	"time"
)

func main() {
	var (
		binary  = flag.String("binary", "prusa-slicer", "Slicer binary to probe")
		url     = flag.String("url", "", "Readiness endpoint to probe (e.g. http://localhost:8080/readyz)")
		timeout = flag.Duration("timeout", 10*time.Second, "Probe timeout")
	)
	flag.Parse()

	if err := checkBinary(*binary); err != nil {
		log.Fatalf("slicer check failed: %v", err)
	}
	fmt.Printf("%s ok\n", *binary)

	if *url != "" {
		if err := checkReady(*url, *timeout); err != nil {
			log.Fatalf("readiness check failed: %v", err)
		}
		fmt.Printf("%s ok\n", *url)
	}
}

func checkBinary(binary string) error {
	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("binary not found: %w", err)
	}

	if err := exec.Command(path, "--help").Run(); err != nil {
		return fmt.Errorf("binary not executable: %w", err)
	}

	return nil
}

func checkReady(url string, timeout time.Duration) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	return nil
}
