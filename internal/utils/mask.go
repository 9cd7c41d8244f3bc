// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

const visibleSuffix = 4

// MaskSecret hides all but the last four characters of a secret, keeping the
// environment prefix of Plaid tokens ("access-sandbox-") readable:
//
//	MaskSecret("access-sandbox-de3ce8ef-33f8-4") == "access-sandbox-****f8-4"
//
// Secrets of eight characters or fewer are fully masked.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 2*visibleSuffix {
		return strings.Repeat("*", len(secret))
	}

	prefix := ""
	body := secret
	for _, kind := range []string{"access-", "public-", "link-"} {
		if !strings.HasPrefix(secret, kind) {
			continue
		}
		rest := strings.TrimPrefix(secret, kind)
		if i := strings.Index(rest, "-"); i > 0 {
			prefix = kind + rest[:i+1]
			body = rest[i+1:]
		}
		break
	}

	if len(body) <= visibleSuffix {
		return prefix + strings.Repeat("*", len(body))
	}
	return prefix + "****" + body[len(body)-visibleSuffix:]
}
