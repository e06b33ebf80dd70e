package update

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type RuntimeConfig struct {
	DesktopNotifications bool
	WorkMinutes          int
	BreakMinutes         int
	FrameInterval        time.Duration
	LogLevel             string
	LogFile              string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DesktopNotifications: false,
		WorkMinutes:          25,
		BreakMinutes:         5,
		FrameInterval:        16 * time.Millisecond,
		LogLevel:             "info",
		LogFile:              "",
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvBool("POMO_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("POMO_WORK_MINUTES"); ok && v > 0 {
		cfg.WorkMinutes = v
	}
	if v, ok := getEnvInt("POMO_BREAK_MINUTES"); ok && v > 0 {
		cfg.BreakMinutes = v
	}
	if v, ok := getEnvInt("POMO_FRAME_INTERVAL_MS"); ok && v > 0 {
		cfg.FrameInterval = time.Duration(v) * time.Millisecond
	}
	if v := strings.TrimSpace(os.Getenv("POMO_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("POMO_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	return cfg
}

func (c RuntimeConfig) WorkLength() time.Duration {
	return time.Duration(c.WorkMinutes) * time.Minute
}

func (c RuntimeConfig) BreakLength() time.Duration {
	return time.Duration(c.BreakMinutes) * time.Minute
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
