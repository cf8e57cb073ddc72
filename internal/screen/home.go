package screen

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/raygaledev/gold-starz/internal/reward"
)

type HomeView struct {
	Balance int
	Rewards []reward.Listing
}

// Home shows the star balance and the rewards, cheapest first.
func Home(p *message.Printer, v HomeView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}

		h.raw(`<section class="balance"><p class="label">Your Star Balance:</p><p class="star-balance">`)
		h.text(Stars(p, v.Balance))
		h.raw(`</p></section>`)

		h.raw(`<section class="rewards"><div class="section-header">`)
		h.raw(`<h2>Rewards you can get with Stars</h2><a class="add-button" href="/rewards/new">+ Add Reward</a></div>`)

		if len(v.Rewards) == 0 {
			h.raw(`<div class="empty-state"><p class="empty-title">No rewards yet!</p>`)
			h.raw(`<p>Start by adding some rewards that can be earned with stars.</p></div>`)
		}

		for _, r := range v.Rewards {
			class := "reward-item"
			if r.Redeemable {
				class += " available"
			}
			h.raw(`<a`)
			h.attr("class", class)
			h.attr("href", "/rewards/new?id="+itoa(r.ID))
			h.raw(`><span class="reward-stars">`)
			h.text(Stars(p, r.Stars))
			h.raw(`</span><span class="reward-description">`)
			h.text(r.Description)
			h.raw(`</span>`)
			if r.Redeemable {
				h.raw(`<span class="redeem">Redeem</span>`)
			}
			h.raw(`</a>`)
		}

		h.raw(`</section>`)
		return h.err
	})
}
