package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/Anshvachhani998/Terdl-api/internal/app/server"
	"github.com/Anshvachhani998/Terdl-api/internal/app/service"
	"github.com/Anshvachhani998/Terdl-api/internal/config"
	"github.com/Anshvachhani998/Terdl-api/internal/logger"
	"github.com/Anshvachhani998/Terdl-api/internal/storage"
	"github.com/Anshvachhani998/Terdl-api/internal/worker"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options := config.Parse()
	hostname := options.Port
	resultHostname := options.ResultHostname

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	err := log.Init("Info")
	zapLogger := log.Log
	if err != nil {
		panic(err)
	}

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	s, err := storage.CreateMemoryStorage()
	if err != nil {
		panic(err)
	}

	manifestStore, err := storage.NewManifestStore(afero.NewOsFs(), options.TempDir)
	if err != nil {
		panic(err)
	}

	videoService := service.NewVideo(s, zapLogger, resultHostname)
	proxy := service.NewStreamProxy(zapLogger, options.StreamTimeout)
	manifests := service.NewManifest(manifestStore, zapLogger, options.ManifestVideoURL, options.ManifestAudioURL)

	sweeper := worker.NewManifestSweeper(zapLogger, manifestStore, options.ManifestTTL)
	go sweeper.Run(context.Background())

	r := server.Init(resultHostname, zapLogger, videoService, proxy, manifests, manifestStore, options.TrustedSubnet)

	if options.EnableHTTPS {
		var hosts []string
		if base, err := url.Parse(resultHostname); err == nil && base.Hostname() != "" {
			hosts = append(hosts, base.Hostname())
		}
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(hosts...),
		}
		srv := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		zapLogger.Info("Server is running with TLS", zap.String("hostname", hostname))
		srv.ListenAndServeTLS("", "")
	} else {
		zapLogger.Info("Server is running", zap.String("hostname", hostname))
		err = http.ListenAndServe(hostname, r)

		if err != nil {
			panic(err)
		}
	}
}
