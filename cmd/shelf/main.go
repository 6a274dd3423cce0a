package main

import "os"

func main() {
	loadEnvFiles()

	if err := newRootCmd(loadConfig()).Execute(); err != nil {
		os.Exit(1)
	}
}
