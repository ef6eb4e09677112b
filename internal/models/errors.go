package models

import "errors"

// Custom errors
var (
	// ErrNoPositiveEdge indicates Kelly selection found nothing worth staking.
	ErrNoPositiveEdge = errors.New("no edge with positive expectation")

	// ErrNoArbitrage indicates the offered prices do not admit a riskless profit.
	ErrNoArbitrage = errors.New("no arbitrage opportunity")

	// ErrNegativeBankroll indicates StakingOptions carried a bankroll below zero.
	ErrNegativeBankroll = errors.New("bankroll must be >= 0")

	// ErrDistributionTooLarge indicates independent-mode enumeration was refused
	// because 2^n buckets would exceed the configured edge cap.
	ErrDistributionTooLarge = errors.New("too many edges for independent outcome enumeration")
)
