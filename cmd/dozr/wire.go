//go:build wireinject
// +build wireinject

package main

import (
	"io"
	"math/rand/v2"

	"github.com/google/wire"

	"github.com/dozr-cli/dozr/pkg/app/builders"
)

// wire up the dependencies.
func InitializeDependencies(source rand.Source, out io.Writer) (*dependencies, error) {
	wire.Build(builders.Builders, newDependencies)
	return &dependencies{}, nil
}
