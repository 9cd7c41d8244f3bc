// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidJWTHeader is returned when a token header does not carry an
// ES256 algorithm together with a key id.
var ErrInvalidJWTHeader = errors.New("invalid JWT header")

const coordinateSize = 32

// JWTKeyID returns the "kid" header of an ES256 token without verifying its
// signature. Any other algorithm is rejected.
func JWTKeyID(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("error parsing JWT header: %w", err)
	}

	if token.Method.Alg() != jwt.SigningMethodES256.Alg() {
		return "", fmt.Errorf("%w: alg %q", ErrInvalidJWTHeader, token.Method.Alg())
	}

	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return "", fmt.Errorf("%w: missing kid", ErrInvalidJWTHeader)
	}

	return kid, nil
}

// ParseP256PublicKey builds an ECDSA public key from the base64url encoded
// x and y coordinates of a P-256 JWK. Points off the curve are rejected.
func ParseP256PublicKey(x, y string) (*ecdsa.PublicKey, error) {
	xb, err := base64.RawURLEncoding.DecodeString(x)
	if err != nil {
		return nil, fmt.Errorf("error decoding x coordinate: %w", err)
	}
	yb, err := base64.RawURLEncoding.DecodeString(y)
	if err != nil {
		return nil, fmt.Errorf("error decoding y coordinate: %w", err)
	}
	if len(xb) > coordinateSize || len(yb) > coordinateSize {
		return nil, errors.New("coordinate too long for P-256")
	}

	point := make([]byte, 1+2*coordinateSize)
	point[0] = 4
	copy(point[1+coordinateSize-len(xb):1+coordinateSize], xb)
	copy(point[1+2*coordinateSize-len(yb):], yb)
	if _, err := ecdh.P256().NewPublicKey(point); err != nil {
		return nil, fmt.Errorf("invalid P-256 point: %w", err)
	}

	return &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(xb),
		Y:     new(big.Int).SetBytes(yb),
	}, nil
}

// VerifyES256 checks the signature of tokenString against key and returns its
// claims. Only ES256 is accepted; expiry is checked when the token carries exp.
func VerifyES256(tokenString string, key *ecdsa.PublicKey) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("error occurred validating token: %w", err)
	}

	return claims, nil
}
