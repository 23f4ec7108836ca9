package main

import (
	"os"

	"k8s.io/klog/v2"
)

func main() {
	cmd := newCommand()
	err := cmd.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
