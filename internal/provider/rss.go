package provider

import (
	"context"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sirupsen/logrus"
	"github.com/tourops/security_intel_system/internal/config"
	"github.com/tourops/security_intel_system/internal/models"
)

// Feed - именованный RSS источник
type Feed struct {
	Name string
	URL  string
}

// rssFeeds - ленты по коду страны. Конфигурация расширяемая:
// новые источники добавляются в таблицу, DEFAULT - запасной набор.
var rssFeeds = map[string][]Feed{
	"FR": {
		{Name: "Le Monde", URL: "https://www.lemonde.fr/rss/une.xml"},
		{Name: "France Info", URL: "https://www.francetvinfo.fr/titres.rss"},
		{Name: "Le Figaro", URL: "https://www.lefigaro.fr/rss/figaro_actualites.xml"},
		{Name: "20 Minutes", URL: "https://www.20minutes.fr/rss/actu.xml"},
		{Name: "France Info Faits Divers", URL: "https://www.francetvinfo.fr/faits-divers.rss"},
		{Name: "Le Parisien", URL: "https://www.leparisien.fr/arc/outboundfeeds/rss/faitsdivers.xml"},
	},
	"DE": {
		{Name: "Spiegel", URL: "https://www.spiegel.de/schlagzeilen/tops/index.rss"},
		{Name: "Zeit", URL: "https://newsfeed.zeit.de/index"},
		{Name: "Tagesschau", URL: "https://www.tagesschau.de/xml/rss2"},
	},
	"UK": {
		{Name: "BBC News", URL: "http://feeds.bbci.co.uk/news/rss.xml"},
		{Name: "The Guardian", URL: "https://www.theguardian.com/uk/rss"},
		{Name: "Sky News", URL: "https://feeds.skynews.com/feeds/rss/uk.xml"},
	},
	"ES": {
		{Name: "El País", URL: "https://feeds.elpais.com/mrss-s/pages/ep/site/elpais.com/portada"},
		{Name: "El Mundo", URL: "https://e00-elmundo.uecdn.es/elmundo/rss/espana.xml"},
	},
	"NL": {
		{Name: "NOS", URL: "https://feeds.nos.nl/nosnieuwsalgemeen"},
		{Name: "RTL Nieuws", URL: "https://www.rtlnieuws.nl/rss.xml"},
	},
	"BE": {
		{Name: "RTBF", URL: "https://rss.rtbf.be/article/rss/rtbfinfo_homepage.xml"},
		{Name: "Le Soir", URL: "https://www.lesoir.be/rss/cible_principale.xml"},
	},
	"IT": {
		{Name: "La Repubblica", URL: "https://www.repubblica.it/rss/homepage/rss2.0.xml"},
		{Name: "Corriere della Sera", URL: "https://xml2.corriereobjects.it/rss/homepage.xml"},
	},
	"DEFAULT": {
		{Name: "Reuters", URL: "https://www.reutersagency.com/feed/?taxonomy=best-topics&post_type=best"},
		{Name: "AP News", URL: "https://rsshub.app/apnews/topics/apf-topnews"},
	},
}

var rssCountryAliases = map[string]string{
	"FRANCE": "FR", "GERMANY": "DE", "DEUTSCHLAND": "DE",
	"UNITED KINGDOM": "UK", "ENGLAND": "UK", "GREAT BRITAIN": "UK", "GB": "UK",
	"SPAIN": "ES", "ESPAÑA": "ES", "ESPAGNE": "ES",
	"NETHERLANDS": "NL", "PAYS-BAS": "NL", "NEDERLAND": "NL",
	"BELGIUM": "BE", "BELGIQUE": "BE", "BELGIË": "BE",
	"ITALY": "IT", "ITALIA": "IT", "ITALIE": "IT",
}

// rssCategoryKeywords - компактные наборы для фильтрации лент
var rssCategoryKeywords = map[string][]string{
	"homicide": {"homicide", "murder", "killed", "stabbing", "shooting", "meurtre", "tué",
		"mord", "getötet", "asesinato", "omicidio"},
	"demonstration": {"protest", "demonstration", "manifestation", "rassemblement", "grève",
		"strike", "rally", "march", "streik", "huelga", "protesta"},
	"crime": {"crime", "robbery", "assault", "theft", "vol", "agression", "cambriolage",
		"raub", "überfall", "robo", "asalto", "rapina"},
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// RSS - агрегатор новостных RSS-лент. Ключ не требуется.
type RSS struct {
	parser *gofeed.Parser
	logger *logrus.Logger
	now    func() time.Time
	feeds  map[string][]Feed
}

// NewRSS создает RSS-агрегатора
func NewRSS(cfg *config.Config, logger *logrus.Logger) *RSS {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: cfg.RSSTimeout}
	parser.UserAgent = cfg.UserAgent
	return &RSS{
		parser: parser,
		logger: logger,
		now:    time.Now,
		feeds:  rssFeeds,
	}
}

// feedsForCountry возвращает ленты по стране с fallback на DEFAULT
func (p *RSS) feedsForCountry(country string) []Feed {
	code := strings.ToUpper(strings.TrimSpace(country))
	if mapped, ok := rssCountryAliases[code]; ok {
		code = mapped
	}
	if feeds, ok := p.feeds[code]; ok && len(feeds) > 0 {
		return feeds
	}
	return p.feeds["DEFAULT"]
}

type rssEntry struct {
	article models.Article
	pubTime *time.Time
}

// parseFeed разбирает одну ленту; любая ошибка дает пустой список
func (p *RSS) parseFeed(ctx context.Context, feed Feed) []rssEntry {
	parsed, err := p.parser.ParseURLWithContext(feed.URL, ctx)
	if err != nil {
		p.logger.WithFields(logrus.Fields{"feed": feed.Name}).WithError(err).Debug("RSS feed parse failed")
		return nil
	}

	var entries []rssEntry
	for i, item := range parsed.Items {
		if i >= 50 {
			break
		}
		title := strings.TrimSpace(item.Title)
		if title == "" || item.Link == "" {
			continue
		}

		summary := htmlTagRe.ReplaceAllString(item.Description, "")
		summary = models.Truncate(strings.TrimSpace(summary), 300)

		pubTime := item.PublishedParsed
		if pubTime == nil {
			pubTime = item.UpdatedParsed
		}
		dateStr := ""
		if pubTime != nil {
			dateStr = pubTime.Format("2006-01-02")
		}

		entries = append(entries, rssEntry{
			article: models.Article{
				Title:   title,
				URL:     item.Link,
				Date:    dateStr,
				Source:  feed.Name,
				Snippet: summary,
			},
			pubTime: pubTime,
		})
	}
	return entries
}

func matchesKeywords(text, category string) bool {
	keywords, ok := rssCategoryKeywords[category]
	if !ok {
		return false
	}
	textLower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(textLower, kw) {
			return true
		}
	}
	return false
}

// FetchArticles собирает статьи из лент страны, фильтрует по городу и
// категории, отсекает записи старше окна, сортирует по дате и усекает
func (p *RSS) FetchArticles(ctx context.Context, city, country, category string, days, maxArticles int) models.ArticleResult {
	feeds := p.feedsForCountry(country)
	if len(feeds) == 0 {
		return models.ArticleResult{Success: false, Err: "No RSS feeds configured for " + country}
	}

	cutoff := p.now().AddDate(0, 0, -days)
	var all []rssEntry
	for _, feed := range feeds {
		all = append(all, p.parseFeed(ctx, feed)...)
	}

	cityLower := strings.ToLower(city)
	var filtered []models.Article
	for _, entry := range all {
		if entry.pubTime != nil && entry.pubTime.Before(cutoff) {
			continue
		}
		text := entry.article.Title + " " + entry.article.Snippet
		if city != "" && !strings.Contains(strings.ToLower(text), cityLower) {
			continue
		}
		if category != "all" && !matchesKeywords(text, category) {
			continue
		}
		filtered = append(filtered, entry.article)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})
	if len(filtered) > maxArticles {
		filtered = filtered[:maxArticles]
	}

	return models.ArticleResult{Success: true, Articles: filtered}
}

// HomicideArticles запрашивает ленточные статьи о насильственных инцидентах
func (p *RSS) HomicideArticles(ctx context.Context, city, country string, days int) models.ArticleResult {
	return p.FetchArticles(ctx, city, country, "homicide", days, 50)
}

// DemonstrationArticles запрашивает ленточные статьи о демонстрациях
func (p *RSS) DemonstrationArticles(ctx context.Context, city, country string, days int) models.ArticleResult {
	return p.FetchArticles(ctx, city, country, "demonstration", days, 50)
}

// CrimeArticles запрашивает ленточные статьи об общей преступности
func (p *RSS) CrimeArticles(ctx context.Context, city, country string, days int) models.ArticleResult {
	return p.FetchArticles(ctx, city, country, "crime", days, 50)
}
