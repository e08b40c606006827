package service

import (
	"context"
	"runtime/debug"
	"strings"
	"time"

	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/models"
)

type appInfoService struct {
	info models.VersionResponse
}

// NewAppInfoService snapshots the configured version together with the
// toolchain and VCS revision embedded in the binary.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	info := models.VersionResponse{
		Version:   version,
		StartedAt: time.Now().UTC(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		info.Revision = buildSetting(bi, "vcs.revision")
	}

	logger.Info().
		Str("version", info.Version).
		Str("go_version", info.GoVersion).
		Str("revision", info.Revision).
		Msg("application info resolved")

	return &appInfoService{info: info}, nil
}

func (s *appInfoService) AppInfo(context.Context) models.VersionResponse {
	return s.info
}

func buildSetting(bi *debug.BuildInfo, key string) string {
	for _, setting := range bi.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}
