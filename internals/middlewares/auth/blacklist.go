package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisBlacklist: token yang di-revoke layanan auth disimpan sebagai
// HMAC(token) hex, jadi raw token tidak pernah masuk Redis.
type RedisBlacklist struct {
	Client *redis.Client
	Secret string
	Prefix string
}

func NewRedisBlacklist(client *redis.Client, secret string) *RedisBlacklist {
	return &RedisBlacklist{Client: client, Secret: secret, Prefix: "jwt:blacklist:"}
}

func hmacHex(msg, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(msg))
	return hex.EncodeToString(m.Sum(nil))
}

func (b *RedisBlacklist) key(raw string) string {
	return b.Prefix + hmacHex(strings.TrimSpace(raw), b.Secret)
}

// Add: revoke token sampai expiresAt. expiresAt zero → tanpa TTL.
func (b *RedisBlacklist) Add(ctx context.Context, raw string, expiresAt time.Time) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var ttl time.Duration
	if !expiresAt.IsZero() {
		if ttl = time.Until(expiresAt); ttl <= 0 {
			return nil
		}
	}
	return errors.Wrap(b.Client.Set(ctx, b.key(raw), 1, ttl).Err(), "blacklist add")
}

// Revoke: token harus ditandatangani dengan Secret; TTL = sisa umur token.
// Token yang sudah expired tidak disimpan (AuthJWT sudah menolaknya).
func (b *RedisBlacklist) Revoke(ctx context.Context, raw string) error {
	exp, err := TokenExpiry(raw, b.Secret)
	if err != nil {
		return err
	}
	if !exp.IsZero() && !exp.After(time.Now()) {
		return nil
	}
	return b.Add(ctx, raw, exp)
}

// TokenExpiry memverifikasi signature HMAC lalu mengembalikan claim exp
// (zero kalau tidak ada). exp yang sudah lewat tidak dianggap error.
func TokenExpiry(raw, secret string) (time.Time, error) {
	claims := jwt.MapClaims{}
	p := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithoutClaimsValidation(),
	)
	if _, err := p.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err != nil {
		return time.Time{}, errors.Wrap(err, "parse token")
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0), nil
	}
	return time.Time{}, nil
}

// Checker cocok untuk AuthJWTOpts.BlacklistChecker.
func (b *RedisBlacklist) Checker(raw string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	n, err := b.Client.Exists(ctx, b.key(raw)).Result()
	if err != nil {
		return false, errors.Wrap(err, "blacklist check")
	}
	return n > 0, nil
}
