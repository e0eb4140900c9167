package models

import "github.com/golang-jwt/jwt/v5"

// Token is an issued or verified session token.
type Token struct {
	// Claims are read through promotion: t.Subject, t.ExpiresAt and so on.
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	// UserID is the numeric owner parsed out of the subject claim.
	UserID int64 `json:"-"`
}

func (t Token) String() string {
	return t.SignedString
}
