// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package header

import (
	"fmt"
	"strings"
	"time"
)

// APIVersion is the schema version of every document this tooling reads or writes.
const APIVersion = "graphle.recipe/v1"

const (
	KindRecipe  Kind = "Recipe"
	KindProfile Kind = "Profile"
	KindRun     Kind = "Run"
)

// Kind represents the type of document.
type Kind string

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindRecipe, KindProfile, KindRun:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// New creates a new Header with the current APIVersion.
func New(opts ...Option) *Header {
	h := &Header{
		APIVersion: APIVersion,
		Metadata:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header carries Kubernetes-style kind and version information for documents.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets kind and APIVersion and stamps "<kind>-timestamp" and
// "<kind>-version" metadata keys.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = make(map[string]string)

	prefix := strings.ToLower(string(kind))
	h.Metadata[prefix+"-timestamp"] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata[prefix+"-version"] = version
	}
}

// Check validates a header read from a document expected to be of kind want.
// An empty kind or apiVersion is accepted so hand-written files may omit them.
func (h *Header) Check(want Kind) error {
	if h.Kind != "" && h.Kind != want {
		return fmt.Errorf("unexpected kind %q, want %q", h.Kind, want)
	}
	if h.APIVersion != "" && h.APIVersion != APIVersion {
		return fmt.Errorf("unsupported apiVersion %q, want %q", h.APIVersion, APIVersion)
	}
	return nil
}
