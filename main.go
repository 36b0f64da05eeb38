package main

import (
	"os"

	"k8s.io/klog/v2"
	"q.log/bigm/cli"
)

func main() {
	err := cli.NewCommand().Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
