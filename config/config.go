package config

import (
	"errors"
	"flag"
	"net"
	"regexp"
	"strconv"
	"time"
)

type Config struct {
	Addr              string
	DBUrl             string
	ImgBBKey          string
	ImgBBTimeout      time.Duration
	TokenSecret       string
	TokenTTL          time.Duration
	InspectorPassword string
	Debug             bool
}

func ParseFlags() (cfg Config, err error) {
	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", 80, "listen port number (default 80)")
	flag.StringVar(&cfg.DBUrl, "db-url", "checklist.sqlite", "path to SQLite3 DB file (default checklist.sqlite)")
	flag.StringVar(&cfg.ImgBBKey, "imgbb-key", "", "ImgBB API key for photo and signature uploads")
	var uploadTimeout uint
	flag.UintVar(&uploadTimeout, "imgbb-timeout", 15, "image upload timeout in seconds (default 15)")
	flag.StringVar(&cfg.TokenSecret, "token-secret", "", "secret key for token encryption and decryption")
	var ttl uint
	flag.UintVar(&ttl, "token-ttl", 1800, "token TTL in seconds (default 1800)")
	flag.StringVar(&cfg.InspectorPassword, "inspector-password", "", "shared password for the per-branch inspector accounts")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.ImgBBTimeout = time.Duration(uploadTimeout) * time.Second
	cfg.TokenTTL = time.Duration(ttl) * time.Second

	if cfg.TokenSecret == "" {
		err = errors.New("missing parameter -token-secret")
		return
	}
	if cfg.InspectorPassword == "" {
		err = errors.New("missing parameter -inspector-password")
	}
	// a missing -imgbb-key is not fatal: it only blocks uploads, which the
	// client reports per call

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
