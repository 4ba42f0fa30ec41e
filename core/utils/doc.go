// Package utils provides common utility functions for the minio-upload application.
// It holds the switch parsing used by configuration loading and other logic that
// doesn't fit into domain-specific packages.
package utils
