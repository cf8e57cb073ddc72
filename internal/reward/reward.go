package reward

import (
	"cmp"
	"slices"
)

const MaxDescriptionLen = 140

// Reward is something stars can be redeemed for.
type Reward struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
}

// Draft carries every Reward field except the id.
type Draft struct {
	Description string `json:"description"`
	Stars       int    `json:"stars"`
}

func (d Draft) withID(id int) Reward {
	return Reward{ID: id, Description: d.Description, Stars: d.Stars}
}

// Listing is a reward as the home screen shows it.
type Listing struct {
	Reward
	Redeemable bool `json:"redeemable"`
}

// Affordable marks each reward the balance covers.
func Affordable(rewards []Reward, balance int) []Listing {
	out := make([]Listing, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, Listing{Reward: r, Redeemable: balance >= r.Stars})
	}
	return out
}

// nextID is one past the largest id currently held, so removing the
// top id lets the next add reuse it.
func nextID(rewards []Reward) int {
	top := 0
	for _, r := range rewards {
		top = max(top, r.ID)
	}
	return top + 1
}

// sortByStars orders rewards by cost in place. Equal costs keep their
// relative order.
func sortByStars(rewards []Reward) {
	slices.SortStableFunc(rewards, func(a, b Reward) int {
		return cmp.Compare(a.Stars, b.Stars)
	})
}
