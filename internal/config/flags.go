package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-b base URL of the remote API
//	-auth-header HTTP header carrying the session token
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d local database DSN
//	-cache-namespace preview cache key prefix
//	-t auth token
//	-page-size diff page size
//	-sync-interval background sync interval (e.g., "5m")
//	-thumb-width preview width in pixels
//	-thumb-height preview height in pixels
//	-c/-config json file path with configs
func ParseFlags() *ClientConfig {
	var baseURL string
	var authHeader string
	var requestTimeout time.Duration
	var databaseDSN string
	var cacheNamespace string
	var authToken string
	var pageSize int
	var syncInterval time.Duration
	var thumbWidth, thumbHeight int
	var jsonConfigPath string

	flag.StringVar(&baseURL, "b", "", "Base URL of the remote API")
	flag.StringVar(&authHeader, "auth-header", "", "HTTP header carrying the session token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&cacheNamespace, "cache-namespace", "", "Preview cache key prefix")
	flag.StringVar(&authToken, "t", "", "Auth token")
	flag.IntVar(&pageSize, "page-size", 0, "Diff page size")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.IntVar(&thumbWidth, "thumb-width", 0, "Preview width in pixels")
	flag.IntVar(&thumbHeight, "thumb-height", 0, "Preview height in pixels")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &ClientConfig{
		App: App{
			AuthToken: authToken,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			AuthHeader:     authHeader,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Cache: Cache{
				Namespace: cacheNamespace,
			},
		},
		Sync: Sync{
			PageSize: pageSize,
			Interval: syncInterval,
		},
		Thumbnail: Thumbnail{
			Width:  thumbWidth,
			Height: thumbHeight,
		},
		JSONFilePath: jsonConfigPath,
	}
}
