package notifier

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"StockPulse/internal/model"
)

// FormatReport renders a full analysis report as a Telegram HTML message.
func FormatReport(r *model.Report) string {
	var b strings.Builder

	last := r.Series.Last()
	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", r.Symbol, r.GeneratedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Close: %.2f | Volume: %s\n", last.Close, humanize.Comma(last.Volume)))

	ind := r.Indicators
	b.WriteString(fmt.Sprintf("SMA20: %s | SMA50: %s | SMA200: %s\n",
		fmtValue(ind.SMA20.Last()), fmtValue(ind.SMA50.Last()), fmtValue(ind.SMA200.Last())))
	b.WriteString(fmt.Sprintf("RSI14: %s | Volatility: %s\n\n",
		fmtValue(ind.RSI14.Last()), fmtValue(ind.Volatility20.Last())))

	writeSignal(&b, "Short term", r.ShortTerm)
	writeSignal(&b, "Long term", r.LongTerm)

	b.WriteString(fmt.Sprintf("%s <b>%s</b>\n%s\n", sentimentIcon(r.Trend.Sentiment),
		r.Trend.Sentiment, r.Trend.Narrative))

	if r.Analyst != nil {
		b.WriteString(fmt.Sprintf("\n🧮 Analysts: %d buy / %d hold / %d sell\n",
			r.Analyst.Buy, r.Analyst.Hold, r.Analyst.Sell))
	} else {
		b.WriteString("\n🧮 Analysts: no data\n")
	}

	if len(r.News) > 0 {
		b.WriteString("\n📰 <b>Recent news:</b>\n")
		for i, n := range r.News {
			if i == 3 {
				break
			}
			b.WriteString(fmt.Sprintf("• <a href=\"%s\">%s</a> (%s)\n", n.Link, n.Title, n.Publisher))
		}
	}

	return b.String()
}

func writeSignal(b *strings.Builder, label string, sig model.Signal) {
	b.WriteString(fmt.Sprintf("%s %s: <b>%s</b>", signalIcon(sig.Category), label, sig.Category))
	if sig.Category != model.SignalInsufficientData && sig.Confidence > 0 {
		b.WriteString(fmt.Sprintf(" (confidence %.0f%%)", sig.Confidence*100))
	}
	b.WriteString("\n")
	for _, reason := range sig.Reasons {
		b.WriteString(fmt.Sprintf("  - %s\n", reason))
	}
	b.WriteString("\n")
}

func fmtValue(v model.Value) string {
	if !v.Defined {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v.Val)
}

func signalIcon(c model.SignalCategory) string {
	switch c {
	case model.SignalBuy:
		return "🟢"
	case model.SignalSell:
		return "🔴"
	case model.SignalInsufficientData:
		return "⚪"
	default:
		return "🟡"
	}
}

func sentimentIcon(s model.Sentiment) string {
	switch s {
	case model.SentimentBullish:
		return "📈"
	case model.SentimentBearish:
		return "📉"
	default:
		return "➖"
	}
}
