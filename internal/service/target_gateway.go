package service

import (
	"context"
	"fmt"

	"course_review_backend/internal/model"
	"course_review_backend/internal/util"
)

// TargetChecker answers whether a target of one type exists.
type TargetChecker interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type targetRegistration struct {
	checker  TargetChecker
	notFound *util.AppError
}

// TargetGateway dispatches existence checks by target type.
type TargetGateway struct {
	targets map[model.TargetType]targetRegistration
}

func NewTargetGateway() *TargetGateway {
	return &TargetGateway{targets: make(map[model.TargetType]targetRegistration)}
}

// Register binds a target type to its checker and the error reported when
// a target of that type is missing.
func (g *TargetGateway) Register(targetType model.TargetType, checker TargetChecker, notFound *util.AppError) *TargetGateway {
	g.targets[targetType] = targetRegistration{checker: checker, notFound: notFound}
	return g
}

func (g *TargetGateway) lookup(targetType model.TargetType) targetRegistration {
	reg, ok := g.targets[targetType]
	if !ok {
		// Target types are validated at the request boundary; reaching here
		// means a type was added without registering its checker.
		panic(fmt.Sprintf("target gateway: no checker registered for %q", targetType))
	}
	return reg
}

// Exists panics for a target type with no registered checker.
func (g *TargetGateway) Exists(ctx context.Context, targetType model.TargetType, id string) (bool, error) {
	return g.lookup(targetType).checker.ExistsByID(ctx, id)
}

// Require fails with the type's NotFound error when the target is absent.
func (g *TargetGateway) Require(ctx context.Context, targetType model.TargetType, id string) error {
	reg := g.lookup(targetType)
	ok, err := reg.checker.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return reg.notFound
	}
	return nil
}
