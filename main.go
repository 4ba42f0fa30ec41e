package main

import "minio-upload/cmd"

func main() {
	cmd.Execute()
}
