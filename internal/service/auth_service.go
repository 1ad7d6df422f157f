// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"ocbs-be/internal/dto"
	"ocbs-be/internal/entity"
	"ocbs-be/internal/pkg/logger"
	"ocbs-be/internal/pkg/serverutils"
	"ocbs-be/internal/repository/unitofwork"
	"ocbs-be/pkg/events"
	pktNats "ocbs-be/pkg/nats"
	"ocbs-be/pkg/osu"

	"golang.org/x/oauth2"
)

type IAuthService interface {
	// LoginURL returns the osu! authorize URL the browser is sent to.
	LoginURL() (string, error)
	LoginFlow(ctx context.Context, req *dto.LoginFlowRequest) (*dto.LoginFlowResponse, error)
}

type AuthServiceOptions struct {
	JWTSecret   string
	TokenTTL    time.Duration
	AdminOsuIds []int64
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	oauthConf      *oauth2.Config
	osuClient      *osu.Client
	logger         logger.ILogger
	eventPublisher *pktNats.Publisher
	jwtSecret      string
	tokenTTL       time.Duration
	admins         map[int64]struct{}
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	oauthConf *oauth2.Config,
	osuClient *osu.Client,
	log logger.ILogger,
	eventPublisher *pktNats.Publisher,
	opts AuthServiceOptions,
) IAuthService {
	admins := make(map[int64]struct{}, len(opts.AdminOsuIds))
	for _, id := range opts.AdminOsuIds {
		admins[id] = struct{}{}
	}
	return &authService{
		uowFactory:     uowFactory,
		oauthConf:      oauthConf,
		osuClient:      osuClient,
		logger:         log,
		eventPublisher: eventPublisher,
		jwtSecret:      opts.JWTSecret,
		tokenTTL:       opts.TokenTTL,
		admins:         admins,
	}
}

func (s *authService) LoginURL() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return s.oauthConf.AuthCodeURL(base64.URLEncoding.EncodeToString(b)), nil
}

func (s *authService) roleOf(osuUserId int64) entity.PlayerRole {
	if _, ok := s.admins[osuUserId]; ok {
		return entity.PlayerRoleAdmin
	}
	return entity.PlayerRolePlayer
}

func (s *authService) LoginFlow(ctx context.Context, req *dto.LoginFlowRequest) (*dto.LoginFlowResponse, error) {
	if req.Code == "" {
		return nil, entity.ErrMissingAuthCode
	}

	token, err := s.oauthConf.Exchange(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: code exchange: %w", entity.ErrUpstream, err)
	}

	profile, err := s.osuClient.OwnProfile(ctx, s.oauthConf.TokenSource(ctx, token))
	if err != nil {
		return nil, fmt.Errorf("%w: own profile: %w", entity.ErrUpstream, err)
	}

	saveData, err := json.Marshal(token)
	if err != nil {
		return nil, err
	}

	player := &entity.Player{
		ApiId:     req.ApiId,
		OsuUserId: profile.ID,
		Username:  profile.Username,
		AvatarURL: profile.AvatarURL,
		Token:     saveData,
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PlayerRepository().Upsert(ctx, player); err != nil {
		return nil, err
	}

	role := s.roleOf(profile.ID)
	accessToken, err := serverutils.SignToken(s.jwtSecret, profile.ID, string(role), s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AuthService", "Player logged in", map[string]interface{}{
		"osu_user_id": profile.ID,
		"username":    profile.Username,
		"role":        role,
	})

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.PlayerLoggedIn,
			Data: map[string]interface{}{
				"osu_user_id": profile.ID,
				"username":    profile.Username,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AuthService", "Failed to publish PLAYER_LOGGED_IN event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.LoginFlowResponse{
		Username:    profile.Username,
		UserId:      profile.ID,
		Avatar:      profile.AvatarURL,
		AccessToken: accessToken,
	}, nil
}
