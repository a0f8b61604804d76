package petadoption

import "embed"

// Migrations son los .sql de goose embebidos en el binario.
//
//go:embed migrations/*.sql
var Migrations embed.FS
