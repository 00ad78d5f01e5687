// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package randutil provides seeded pseudo-random generators for tests, so
// that a failing randomized test can be reproduced from its logged seed.
package randutil

import (
	"context"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/containers/pkg/util/log"
)

// SeedEnvVar names the environment variable that, when set, fixes the seed
// returned by NewTestRand.
const SeedEnvVar = "COCKROACH_RANDOM_SEED"

// NewPseudoSeed generates a seed from the current time.
func NewPseudoSeed() int64 {
	seed := time.Now().UnixNano()
	// Mix in a multiple of a large prime to make seeds taken in quick
	// succession less alike.
	return seed ^ (seed * 6364136223846793005)
}

// NewPseudoRand returns an instance of math/rand.Rand seeded from the
// current time, along with the seed used.
func NewPseudoRand() (*rand.Rand, int64) {
	seed := NewPseudoSeed()
	return rand.New(rand.NewSource(seed)), seed
}

// NewTestRand returns an instance of math/rand.Rand for use in tests. The
// seed is taken from COCKROACH_RANDOM_SEED if set, and from the current time
// otherwise. The seed is logged so that failures can be reproduced.
func NewTestRand() (*rand.Rand, int64) {
	seed := envSeed()
	if seed == 0 {
		seed = NewPseudoSeed()
	}
	log.Infof(context.Background(), "random seed: %d", seed)
	return NewTestRandWithSeed(seed), seed
}

// NewTestRandWithSeed returns an instance of math/rand.Rand seeded with the
// given seed.
func NewTestRandWithSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func envSeed() int64 {
	s, ok := os.LookupEnv(SeedEnvVar)
	if !ok || s == "" {
		return 0
	}
	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Warningf(context.Background(), "ignoring malformed %s=%q: %v", SeedEnvVar, s, err)
		return 0
	}
	return seed
}
