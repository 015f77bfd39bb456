// Package models - JwtToken thuộc domain auth.
package models

import "github.com/dgrijalva/jwt-go"

// JwtToken chứa data được mã hóa trong JWT token.
type JwtToken struct {
	AdminID      string `json:"adminId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}
