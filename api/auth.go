package api

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"fundtrack/internal/domain"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// AccessTokenClaims is the subset of the Supabase access token the engine
// reads. The fund role lives in app_metadata so users cannot edit it.
type AccessTokenClaims struct {
	Audience    string      `json:"aud"`
	Email       *string     `json:"email"`
	ExpiresAt   int64       `json:"exp"`
	IssuedAt    int64       `json:"iat"`
	Issuer      string      `json:"iss"`
	Role        string      `json:"role"`
	Subject     string      `json:"sub"`
	AppMetadata AppMetadata `json:"app_metadata"`
}

type AppMetadata struct {
	Provider string `json:"provider"`
	FundRole string `json:"fund_role"`
}

type jwksResponse struct {
	Keys []jwkKey `json:"keys"`
}

// Minimal subset of JWK fields needed for ES256 verification.
type jwkKey struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	Kid string `json:"kid"`
	X   string `json:"x"`
	Y   string `json:"y"`
}

var (
	jwksCacheMu sync.RWMutex
	// cache key: jwksURL + "|" + kid
	jwksKeyCache = map[string]*ecdsa.PublicKey{}
)

func base64URLDecodeToBigInt(s string) (*big.Int, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

func getES256PublicKey(jwksURL string, kid string) (*ecdsa.PublicKey, error) {
	cacheKey := jwksURL + "|" + kid
	jwksCacheMu.RLock()
	if k, ok := jwksKeyCache[cacheKey]; ok {
		jwksCacheMu.RUnlock()
		return k, nil
	}
	jwksCacheMu.RUnlock()

	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(jwksURL) // #nosec G107 - JWKS URL derived from token issuer
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch JWKS: http %d", resp.StatusCode)
	}

	var jwks jwksResponse
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return nil, fmt.Errorf("failed to decode JWKS: %w", err)
	}

	for _, k := range jwks.Keys {
		if k.Kid != kid {
			continue
		}
		if k.Kty != "EC" || k.Crv != "P-256" {
			return nil, fmt.Errorf("unsupported JWK key type/curve: kty=%s crv=%s", k.Kty, k.Crv)
		}
		x, err := base64URLDecodeToBigInt(k.X)
		if err != nil {
			return nil, fmt.Errorf("failed to decode JWK x: %w", err)
		}
		y, err := base64URLDecodeToBigInt(k.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to decode JWK y: %w", err)
		}
		pub := &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}

		jwksCacheMu.Lock()
		jwksKeyCache[cacheKey] = pub
		jwksCacheMu.Unlock()

		return pub, nil
	}

	return nil, fmt.Errorf("kid not found in JWKS: %s", kid)
}

func decodeUnverified(jwtStr string) (map[string]any, *AccessTokenClaims, error) {
	parts := strings.Split(jwtStr, ".")
	if len(parts) < 2 {
		return nil, nil, fmt.Errorf("invalid JWT format")
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT header: %w", err)
	}
	var header map[string]any
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JWT header: %w", err)
	}

	claimsBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT claims: %w", err)
	}
	var claims AccessTokenClaims
	if err := json.Unmarshal(claimsBytes, &claims); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JWT claims: %w", err)
	}

	return header, &claims, nil
}

// parseAccessToken verifies an HS256 token against the shared secret, falling
// back to ES256 through the issuer's JWKS.
func parseAccessToken(jwtStr string, decodeToken string) (*AccessTokenClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})

	if err != nil {
		header, unverified, decodeErr := decodeUnverified(jwtStr)
		if decodeErr != nil {
			return nil, fmt.Errorf("failed to parse token: %w", err)
		}
		alg, _ := header["alg"].(string)
		if alg != "ES256" {
			return nil, fmt.Errorf("failed to parse token: %w", err)
		}
		kid, _ := header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("failed to parse token: missing kid")
		}
		if unverified.Issuer == "" {
			return nil, fmt.Errorf("failed to parse token: missing iss")
		}

		jwksURL := strings.TrimRight(unverified.Issuer, "/") + "/.well-known/jwks.json"
		esToken, esErr := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return getES256PublicKey(jwksURL, kid)
		})
		if esErr != nil {
			return nil, fmt.Errorf("failed to parse token: %w", esErr)
		}
		token = esToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}
	claimsJSON, err := json.Marshal(mapClaims)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal claims: %w", err)
	}
	var claims AccessTokenClaims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	if time.Now().UTC().Unix() > claims.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &claims, nil
}

// actorFromClaims maps the token onto an engine actor. Unknown or missing
// fund roles are read only.
func actorFromClaims(claims AccessTokenClaims) (domain.Actor, error) {
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("invalid token subject %q: %w", claims.Subject, err)
	}
	role := domain.Role(strings.ToLower(claims.AppMetadata.FundRole))
	switch role {
	case domain.RoleAdmin, domain.RoleManager, domain.RoleViewer:
	default:
		role = domain.RoleViewer
	}
	return domain.Actor{UserID: userID, Role: role}, nil
}

func actorFromRequest(r *http.Request, decodeToken string) (domain.Actor, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return domain.Actor{}, fmt.Errorf("missing authorization header")
	}
	tokenStr, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenStr == "" {
		return domain.Actor{}, fmt.Errorf("authorization header must be a bearer token")
	}
	claims, err := parseAccessToken(tokenStr, decodeToken)
	if err != nil {
		return domain.Actor{}, err
	}
	return actorFromClaims(*claims)
}
