package worldgen

import (
	"fmt"
	"math/rand"

	"worldforge/internal/app/ports"
	"worldforge/internal/domain/world"
)

type StartPositionUseCase struct {
	Generator ports.WorldGenerator
	// Rand defaults to the process-wide source, which is safe for
	// concurrent use.
	Rand world.RandSource
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

func (u StartPositionUseCase) Execute(req StartPositionRequest) (StartPositionResponse, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return StartPositionResponse{}, fmt.Errorf("%w: width and height must be positive", ErrInvalidRequest)
	}
	rng := u.Rand
	if rng == nil {
		rng = globalRand{}
	}
	p, err := u.Generator.StartingPosition(req.Width, req.Height, rng)
	if err != nil {
		return StartPositionResponse{}, err
	}
	return StartPositionResponse{Position: p}, nil
}
