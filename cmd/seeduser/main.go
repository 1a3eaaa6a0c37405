// cmd/seeduser/main.go: crea un usuario o restablece su contraseña.
// Uso: go run ./cmd/seeduser -username operador -password secreto -nombre "Operador Turno"
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"aratrack/internal/apierror"
	"aratrack/internal/config"
	"aratrack/internal/infra"
	"aratrack/internal/model"
	"aratrack/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	username := flag.String("username", "", "nombre de usuario")
	password := flag.String("password", "", "contraseña (min 4 caracteres)")
	nombre := flag.String("nombre", "", "nombre completo")
	flag.Parse()

	if *username == "" || len(*password) < 4 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(infra.DatabaseOptions{
		Driver:        cfg.DBDriver,
		DSN:           cfg.DatabaseURL,
		BusyTimeoutMS: cfg.DBBusyTimeoutMS,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt error")
	}

	ctx := context.Background()
	repo := repository.NewUsuarioRepository(db)
	user, err := repo.FindByUsername(ctx, *username)
	switch {
	case err == nil:
		user.PasswordHash = string(hash)
		user.Activo = true
		if *nombre != "" {
			user.NombreCompleto = *nombre
		}
		if err := repo.Update(ctx, user); err != nil {
			log.Fatal().Err(err).Msg("update error")
		}
		log.Info().Str("username", *username).Msg("contraseña restablecida")
	case errors.Is(err, apierror.ErrNotFound):
		user = &model.Usuario{
			Username:       *username,
			NombreCompleto: *nombre,
			PasswordHash:   string(hash),
			Activo:         true,
		}
		if err := repo.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Msg("insert error")
		}
		log.Info().Str("username", *username).Msg("usuario creado")
	default:
		log.Fatal().Err(err).Msg("lookup error")
	}
}
