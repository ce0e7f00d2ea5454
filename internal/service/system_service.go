package service

import "time"

// SystemService handles system-level operations like health and version checks.
type SystemService struct {
	version   string
	startedAt time.Time
}

// NewSystemService creates a new SystemService.
func NewSystemService(version string) *SystemService {
	return &SystemService{
		version:   version,
		startedAt: time.Now().UTC(),
	}
}

// VersionInfo contains application version information.
type VersionInfo struct {
	AppVersion string
	UptimeSecs int64
}

// CheckVersion returns the running application version and uptime.
func (s *SystemService) CheckVersion() VersionInfo {
	return VersionInfo{
		AppVersion: s.version,
		UptimeSecs: int64(time.Since(s.startedAt).Seconds()),
	}
}
