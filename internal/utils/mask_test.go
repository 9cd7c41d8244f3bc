// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "testing"

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "short", in: "abc", want: "***"},
		{name: "eight chars", in: "abcdefgh", want: "********"},
		{name: "plain secret", in: "0123456789abcdef", want: "****cdef"},
		{name: "access token", in: "access-sandbox-de3ce8ef-33f8-4", want: "access-sandbox-****f8-4"},
		{name: "public token", in: "public-production-1234567890", want: "public-production-****7890"},
		{name: "prefix without env", in: "access-abcdefghij", want: "****ghij"},
		{name: "short body", in: "link-sandbox-abc", want: "link-sandbox-***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskSecret(tt.in); got != tt.want {
				t.Errorf("MaskSecret(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMaskSecret_NeverLeaksFullValue(t *testing.T) {
	secret := "access-production-2b1e5c4a-9d7f-4e3a-8c6b-1f0e9d8c7b6a"
	if got := MaskSecret(secret); got == secret {
		t.Fatal("expected secret to be masked")
	}
}
