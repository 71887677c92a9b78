package signal

import (
	"fmt"

	"StockPulse/internal/model"
)

// vote is one signed contribution to a rule set, with the reason that fired.
type vote struct {
	score  int
	reason string
}

// checkRSI votes on oversold/overbought state at the latest bar.
func checkRSI(rsi model.Value, cfg Config) *vote {
	if !rsi.Defined {
		return nil
	}
	if rsi.Val < cfg.RSIOversold {
		return &vote{+1, fmt.Sprintf("RSI %.1f indicates oversold condition (below %.0f)", rsi.Val, cfg.RSIOversold)}
	}
	if rsi.Val > cfg.RSIOverbought {
		return &vote{-1, fmt.Sprintf("RSI %.1f indicates overbought condition (above %.0f)", rsi.Val, cfg.RSIOverbought)}
	}
	return nil
}

// checkSMA20Trend votes when the close sits on the right side of SMA20 and
// the average itself has moved the same way over the slope window.
func checkSMA20Trend(price float64, sma20 model.Series, cfg Config) *vote {
	cur := sma20.Last()
	prev := sma20.At(len(sma20) - 1 - cfg.SMASlopeBars)
	if !cur.Defined || !prev.Defined {
		return nil
	}
	if price > cur.Val && cur.Val > prev.Val {
		return &vote{+1, fmt.Sprintf("close %.2f above rising SMA20 %.2f", price, cur.Val)}
	}
	if price < cur.Val && cur.Val < prev.Val {
		return &vote{-1, fmt.Sprintf("close %.2f below falling SMA20 %.2f", price, cur.Val)}
	}
	return nil
}

// checkShortMomentum votes when the short-horizon percent change exceeds the
// configured threshold either way.
func checkShortMomentum(mom model.Value, cfg Config) *vote {
	if !mom.Defined {
		return nil
	}
	if mom.Val > cfg.MomentumThreshold {
		return &vote{+1, fmt.Sprintf("%d-day momentum %+.1f%% exceeds +%.1f%%", cfg.MomentumBars, mom.Val, cfg.MomentumThreshold)}
	}
	if mom.Val < -cfg.MomentumThreshold {
		return &vote{-1, fmt.Sprintf("%d-day momentum %+.1f%% below -%.1f%%", cfg.MomentumBars, mom.Val, cfg.MomentumThreshold)}
	}
	return nil
}

// checkSMA200 votes on which side of the 200-period average the close sits.
func checkSMA200(price float64, sma200 model.Value) *vote {
	if !sma200.Defined {
		return nil
	}
	if price > sma200.Val {
		return &vote{+1, fmt.Sprintf("close %.2f above SMA200 %.2f (long-term uptrend)", price, sma200.Val)}
	}
	if price < sma200.Val {
		return &vote{-1, fmt.Sprintf("close %.2f below SMA200 %.2f (long-term downtrend)", price, sma200.Val)}
	}
	return nil
}

// checkCross votes when SMA50 crossed SMA200 within the lookback window.
// A fresh cross weighs double a plain side-of-average reading.
func checkCross(sma50, sma200 model.Series, cfg Config) *vote {
	dir, at := detectCross(sma50, sma200, cfg.CrossLookback)
	switch dir {
	case crossGolden:
		return &vote{+2, fmt.Sprintf("golden cross: SMA50 %.2f crossed above SMA200 %.2f %d bars ago",
			sma50.Last().Val, sma200.Last().Val, len(sma50)-1-at)}
	case crossDeath:
		return &vote{-2, fmt.Sprintf("death cross: SMA50 %.2f crossed below SMA200 %.2f %d bars ago",
			sma50.Last().Val, sma200.Last().Val, len(sma50)-1-at)}
	}
	return nil
}

// checkAnalysts votes when a strict majority of the supplied ratings leans
// one way. An empty list contributes nothing and adds no reason.
func checkAnalysts(ratings []model.AnalystRating) *vote {
	if len(ratings) == 0 {
		return nil
	}
	var buy, sell int
	for _, r := range ratings {
		switch {
		case r.IsBuy():
			buy++
		case r.IsSell():
			sell++
		}
	}
	if buy > len(ratings)/2 {
		return &vote{+1, fmt.Sprintf("analyst sentiment: %d of %d ratings are buy or strong buy", buy, len(ratings))}
	}
	if sell > len(ratings)/2 {
		return &vote{-1, fmt.Sprintf("analyst sentiment: %d of %d ratings are sell or strong sell", sell, len(ratings))}
	}
	return nil
}
