// Package config provides configuration structures and utilities for the
// stereoprep front end. It defines the options controlling invocation
// checking, report generation, and run history, and loads project-level
// defaults from an optional .stereoprep YAML file.
package config
