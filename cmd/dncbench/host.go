// Copyright 2025 go-dnc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// HostInfo describes the machine a report was produced on.
type HostInfo struct {
	OS       string   `json:"os"`
	Arch     string   `json:"arch"`
	NumCPU   int      `json:"num_cpu"`
	Features []string `json:"features"`
}

func (h HostInfo) String() string {
	features := "none"
	if len(h.Features) > 0 {
		features = strings.Join(h.Features, " ")
	}
	return fmt.Sprintf("%s/%s, %d cpus, features: %s", h.OS, h.Arch, h.NumCPU, features)
}

func currentHost() HostInfo {
	return HostInfo{
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		NumCPU:   runtime.NumCPU(),
		Features: cpuFeatures(),
	}
}

// cpuFeatures lists the detected SIMD extensions. The cpu package exposes
// every architecture's flags on all platforms; the ones that do not apply
// stay false.
func cpuFeatures() []string {
	flags := []struct {
		name string
		ok   bool
	}{
		{"sse4.2", cpu.X86.HasSSE42},
		{"avx2", cpu.X86.HasAVX2},
		{"fma", cpu.X86.HasFMA},
		{"avx512f", cpu.X86.HasAVX512F},
		{"bmi2", cpu.X86.HasBMI2},
		{"asimd", cpu.ARM64.HasASIMD},
		{"sve", cpu.ARM64.HasSVE},
		{"sve2", cpu.ARM64.HasSVE2},
	}

	var out []string
	for _, f := range flags {
		if f.ok {
			out = append(out, f.name)
		}
	}
	return out
}
