package main

import (
	"maps"
	"slices"
)

// Platform is an OS/Arch pair nglint is released for.
type Platform struct {
	OS   string
	Arch string
	Arm  string
}

// Platforms lists the release targets, keyed by their dagger platform name.
var Platforms = map[string]Platform{
	"linux/386":     {OS: "linux", Arch: "386"},
	"linux/amd64":   {OS: "linux", Arch: "amd64"},
	"linux/arm/v7":  {OS: "linux", Arch: "arm", Arm: "7"},
	"linux/arm64":   {OS: "linux", Arch: "arm64"},
	"darwin/amd64":  {OS: "darwin", Arch: "amd64"},
	"darwin/arm64":  {OS: "darwin", Arch: "arm64"},
	"windows/amd64": {OS: "windows", Arch: "amd64"},
}

// AvailablePlatforms returns the release targets in a stable order.
func AvailablePlatforms() []string {
	return slices.Sorted(maps.Keys(Platforms))
}

// BinaryName returns the file name of the binary built for p.
func (p Platform) BinaryName() string {
	name := "nglint-" + p.OS + "-" + p.Arch
	if p.Arm != "" {
		name += "v" + p.Arm
	}
	if p.OS == "windows" {
		name += ".exe"
	}
	return name
}
