// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"deliverysys/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest unit of work their operation needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AttendanceRepoFactory provides access to the attendance repository within a transaction.
	AttendanceRepoFactory interface {
		AttendanceRepository() ports.AttendanceRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AttendanceUoW manages transactions for shift-only operations.
	AttendanceUoW interface {
		TxManager
		AttendanceRepoFactory
	}

	// AttendanceUoWFactory creates new attendance unit of work instances.
	AttendanceUoWFactory interface {
		Create() AttendanceUoW
	}
)
