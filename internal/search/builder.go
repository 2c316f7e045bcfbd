package search

import (
	"github.com/AlexPavAi/dog-finder/internal/dogstore"
	"github.com/AlexPavAi/dog-finder/internal/filter"
)

// buildFilter translates the request's optional attributes into the filter
// handed to the vector store. Every present attribute contributes one Equal
// predicate; a mandatory isMatched == false predicate is always appended so
// reunited dogs never appear in results. The predicates are combined under a
// single And, preserving their order.
//
// isVerified deliberately contributes nothing here (see Request.IsVerified).
func buildFilter(req *Request) *filter.Filter {
	var exprs []filter.Expr

	if req.Type != nil {
		exprs = append(exprs, filter.TextEqual(dogstore.FieldType, string(*req.Type)))
	}
	if req.Breed != nil {
		exprs = append(exprs, filter.TextEqual(dogstore.FieldBreed, *req.Breed))
	}
	if req.Sex != nil {
		exprs = append(exprs, filter.TextEqual(dogstore.FieldSex, string(*req.Sex)))
	}
	if req.Size != nil {
		exprs = append(exprs, filter.TextEqual(dogstore.FieldSize, *req.Size))
	}
	if req.Color != nil {
		exprs = append(exprs, filter.TextEqual(dogstore.FieldColor, *req.Color))
	}
	if req.ChipNumber != nil {
		exprs = append(exprs, filter.TextEqual(dogstore.FieldChipNumber, *req.ChipNumber))
	}
	if req.Name != nil {
		exprs = append(exprs, filter.TextEqual(dogstore.FieldName, *req.Name))
	}
	if req.Location != nil {
		exprs = append(exprs, filter.TextEqual(dogstore.FieldLocation, *req.Location))
	}

	exprs = append(exprs, filter.BoolEqual(dogstore.FieldIsMatched, false))

	f, err := filter.And(exprs...)
	if err != nil {
		// Unreachable: the list always holds at least the isMatched predicate.
		return nil
	}
	return f
}
