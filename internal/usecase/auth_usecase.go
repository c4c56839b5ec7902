package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"patient-booking-api/config"
	"patient-booking-api/internal/delivery/dto"
	"patient-booking-api/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidClientCredentials = errors.New("invalid client credentials")
	ErrInvalidRefreshToken      = errors.New("invalid refresh token")
)

// AuthUsecase issues bearer tokens to the configured machine client. Issued
// token ids are tracked in Redis so tokens can be revoked by deleting the key.
type AuthUsecase interface {
	IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
}

type authUsecase struct {
	log         *logrus.Logger
	cfg         config.AuthConfig
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	log *logrus.Logger,
	cfg config.AuthConfig,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		cfg:         cfg,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (u *authUsecase) IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.ClientID), []byte(u.cfg.ClientID)) != 1 ||
		subtle.ConstantTimeCompare([]byte(req.ClientSecret), []byte(u.cfg.ClientSecret)) != 1 {
		return nil, ErrInvalidClientCredentials
	}

	return u.issueTokenPair(ctx, req.ClientID)
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidRefreshToken
	}

	// Refresh token must still be registered (not revoked)
	refreshKey := refreshTokenKey(claims.ClientID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token %s: %+v", claims.TokenID, err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrInvalidRefreshToken
	}

	// Rotate: the old refresh token is revoked when a new pair is issued
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to revoke refresh token %s: %+v", claims.TokenID, err)
	}

	return u.issueTokenPair(ctx, claims.ClientID)
}

func (u *authUsecase) issueTokenPair(ctx context.Context, clientID string) (*dto.TokenResponse, error) {
	accessToken, accessID, err := u.jwtService.GenerateAccessToken(clientID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshID, err := u.jwtService.GenerateRefreshToken(clientID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, accessTokenKey(clientID, accessID), "1", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to register access token: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshTokenKey(clientID, refreshID), "1", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to register refresh token: %+v", err)
		return nil, err
	}

	u.log.Infof("Token pair issued for client %s", clientID)

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func accessTokenKey(clientID, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", clientID, tokenID)
}

func refreshTokenKey(clientID, tokenID string) string {
	return fmt.Sprintf("refresh_token:%s:%s", clientID, tokenID)
}
