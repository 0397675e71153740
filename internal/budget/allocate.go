// Package budget implements the arithmetic that distributes a remaining
// monthly budget across spending buckets.
//
// A bucket is funded either by a fixed target amount or by a percentage of
// whatever is left after all fixed buckets are funded. The functions in this
// package are pure, persistence is handled by the models package.
package budget

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Input is the subset of a bucket that the allocation needs.
type Input struct {
	ID           uuid.UUID
	TargetAmount decimal.Decimal // Fixed-amount bucket when positive
	Percentage   decimal.Decimal // Share of the remainder when positive and no target amount is set
}

// Result is the amount allocated to a single bucket.
type Result struct {
	BucketID uuid.UUID
	Amount   decimal.Decimal
}

// Allocate computes the allocation for every bucket from the remaining
// budget.
//
// Fixed buckets are satisfied greedily in input order, each one clamped to
// the budget that is still unclaimed. The order is significant: once the
// budget is exhausted, later fixed buckets receive zero.
//
// Percentage buckets split what is left after the fixed buckets. The
// percentages are normalized to their actual sum, so a set summing to 60 or
// 150 still partitions the full remainder proportionally.
//
// A negative remaining budget is treated as zero. Buckets that declare
// neither a positive target amount nor a positive percentage receive zero.
func Allocate(buckets []Input, remaining decimal.Decimal) []Result {
	results := make([]Result, len(buckets))
	for i, bucket := range buckets {
		results[i] = Result{BucketID: bucket.ID, Amount: decimal.Zero}
	}

	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	left := remaining
	for i, bucket := range buckets {
		if !isFixed(bucket) {
			continue
		}

		amount := decimal.Min(bucket.TargetAmount, left)
		if amount.IsNegative() {
			amount = decimal.Zero
		}

		results[i].Amount = amount
		left = left.Sub(amount)
	}

	if left.IsNegative() {
		left = decimal.Zero
	}

	totalPercentage := decimal.Zero
	for _, bucket := range buckets {
		if isPercentage(bucket) {
			totalPercentage = totalPercentage.Add(bucket.Percentage)
		}
	}

	// Without any percentage buckets there is nothing left to distribute
	if !totalPercentage.IsPositive() {
		return results
	}

	for i, bucket := range buckets {
		if !isPercentage(bucket) {
			continue
		}

		results[i].Amount = left.Mul(bucket.Percentage).Div(totalPercentage).Round(2)
	}

	return results
}

// Sum returns the total amount over all results.
func Sum(results []Result) decimal.Decimal {
	sum := decimal.Zero
	for _, result := range results {
		sum = sum.Add(result.Amount)
	}

	return sum
}

func isFixed(bucket Input) bool {
	return bucket.TargetAmount.IsPositive()
}

func isPercentage(bucket Input) bool {
	return !bucket.TargetAmount.IsPositive() && bucket.Percentage.IsPositive()
}
