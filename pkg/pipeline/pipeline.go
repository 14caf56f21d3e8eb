package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/nwebcraft/reghawk/pkg/domain"
	"github.com/nwebcraft/reghawk/pkg/notify"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/judge.go -pkg mocks -skip-ensure -fmt goimports . Judge
//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer
//go:generate moq -out mocks/broadcaster.go -pkg mocks -skip-ensure -fmt goimports . Broadcaster

// Store is the durable state consumed by a run. It is acquired at run
// start through OpenStore and released on every exit path.
type Store interface {
	ActiveFeedSources(ctx context.Context) ([]domain.FeedSource, error)
	TouchLastFetched(ctx context.Context, sourceKey string) error
	InsertIfNew(ctx context.Context, item domain.FeedItem, source domain.FeedSource) (*domain.Article, bool, error)
	UpdateClassification(ctx context.Context, articleID int64, relevant bool, category *string) error
	UpdateAnalysis(ctx context.Context, articleID int64, analysis domain.Analysis) error
	MarkNotified(ctx context.Context, articleID int64) error
	AwaitingNotify(ctx context.Context) ([]domain.Article, error)
	Close() error
}

// Fetcher retrieves and parses one syndication feed
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]domain.FeedItem, error)
}

// Extractor fetches an article detail page as bounded plain text
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Judge performs batched step-1 relevance classification
type Judge interface {
	Judge(ctx context.Context, articles []domain.Article, sources map[string]domain.FeedSource) ([]domain.Classification, error)
}

// Analyzer performs step-2 impact analysis for one article
type Analyzer interface {
	Analyze(ctx context.Context, sourceName, title, content string) (domain.Analysis, error)
}

// Broadcaster pushes one batch of at most notify.BatchLimit messages
type Broadcaster interface {
	Broadcast(ctx context.Context, messages []notify.Message) error
}

// Pipeline drives one ingestion-and-triage run: fetch feeds, dedupe-insert,
// classify new articles, analyze the relevant ones, broadcast the analyzed
// ones. A failure local to one source, one article, or one batch is logged
// and skipped; only store acquisition and a broken classification contract
// abort the run.
type Pipeline struct {
	openStore  func(ctx context.Context) (Store, error)
	fetcher    Fetcher
	extractor  Extractor
	judge      Judge
	analyzer   Analyzer
	broadcast  Broadcaster
	maxWorkers int
	pacing     time.Duration
}

// Config holds the pipeline collaborators and run parameters
type Config struct {
	OpenStore  func(ctx context.Context) (Store, error)
	Fetcher    Fetcher
	Extractor  Extractor
	Judge      Judge
	Analyzer   Analyzer
	Broadcast  Broadcaster
	MaxWorkers int
	Pacing     time.Duration // pause between broadcast batches, 0 in tests
}

// New creates a pipeline with the provided configuration
func New(cfg Config) *Pipeline {
	maxWorkers := cfg.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	return &Pipeline{
		openStore:  cfg.OpenStore,
		fetcher:    cfg.Fetcher,
		extractor:  cfg.Extractor,
		judge:      cfg.Judge,
		analyzer:   cfg.Analyzer,
		broadcast:  cfg.Broadcast,
		maxWorkers: maxWorkers,
		pacing:     cfg.Pacing,
	}
}

// Run executes one full pipeline pass and reports the counts of new,
// relevant, and notified articles. An empty feed day is a normal zero
// summary, not an error.
func (p *Pipeline) Run(ctx context.Context) (domain.RunSummary, error) {
	var summary domain.RunSummary

	store, err := p.openStore(ctx)
	if err != nil {
		return summary, fmt.Errorf("%w: open store: %v", ErrConfig, err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			lgr.Printf("[WARN] failed to close store: %v", closeErr)
		}
	}()

	sources, err := store.ActiveFeedSources(ctx)
	if err != nil {
		return summary, fmt.Errorf("%w: load feed sources: %v", ErrConfig, err)
	}
	lgr.Printf("[INFO] monitoring %d sources", len(sources))

	sourceMap := make(map[string]domain.FeedSource, len(sources))
	for _, src := range sources {
		sourceMap[src.Key] = src
	}

	newArticles := p.ingest(ctx, store, sources)
	summary.NewCount = len(newArticles)
	lgr.Printf("[INFO] %d new articles", len(newArticles))

	if len(newArticles) == 0 {
		return summary, nil
	}

	relevant, err := p.classify(ctx, store, newArticles, sourceMap)
	if err != nil {
		return summary, err
	}
	summary.RelevantCount = len(relevant)
	lgr.Printf("[INFO] %d/%d articles relevant", len(relevant), len(newArticles))

	if len(relevant) == 0 {
		return summary, nil
	}

	p.analyze(ctx, store, relevant)

	summary.NotifiedCount = p.notifyPending(ctx, store)
	lgr.Printf("[INFO] run done: new=%d relevant=%d notified=%d",
		summary.NewCount, summary.RelevantCount, summary.NotifiedCount)
	return summary, nil
}

// ingest fetches every source and dedupe-inserts the parsed entries,
// returning the articles the store reports as newly created. Feeds are
// fetched concurrently but results apply in source-key order, so runs
// are reproducible. The last-fetched timestamp records every attempt,
// success or failure.
func (p *Pipeline) ingest(ctx context.Context, store Store, sources []domain.FeedSource) []domain.Article {
	type fetchResult struct {
		items []domain.FeedItem
		err   error
	}
	results := make([]fetchResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxWorkers)
	for i, src := range sources {
		g.Go(func() error {
			items, err := p.fetcher.Fetch(gctx, src.FeedURL)
			results[i] = fetchResult{items: items, err: err}
			return nil
		})
	}
	_ = g.Wait() // workers report through results, never an error

	var newArticles []domain.Article
	for i, src := range sources {
		res := results[i]
		if res.err != nil {
			lgr.Printf("[WARN] fetch failed for source %s: %v", src.Key, res.err)
		} else {
			fresh := 0
			for _, item := range res.items {
				article, wasNew, insErr := store.InsertIfNew(ctx, item, src)
				if insErr != nil {
					lgr.Printf("[WARN] insert failed for %s (source %s): %v", item.URL, src.Key, insErr)
					continue
				}
				if wasNew {
					newArticles = append(newArticles, *article)
					fresh++
				}
			}
			lgr.Printf("[DEBUG] source %s: %d entries, %d new", src.Key, len(res.items), fresh)
		}

		// marks "attempted", not "succeeded"
		if err := store.TouchLastFetched(ctx, src.Key); err != nil {
			lgr.Printf("[WARN] failed to touch last fetched for source %s: %v", src.Key, err)
		}
	}

	return newArticles
}

// classify runs the batched relevance judgment and persists every result,
// relevant or not, so no URL is ever judged twice. The classifier's
// ordering contract is load-bearing: a result count that differs from the
// input aborts the run. A failed backend call loses the batch for this
// run; nothing is guessed.
func (p *Pipeline) classify(ctx context.Context, store Store, articles []domain.Article, sources map[string]domain.FeedSource) ([]domain.Article, error) {
	classifications, err := p.judge.Judge(ctx, articles, sources)
	if err != nil {
		lgr.Printf("[WARN] classification failed, no articles judged this run: %v", err)
		return nil, nil
	}

	if len(classifications) != len(articles) {
		return nil, fmt.Errorf("%w: classifier returned %d results for %d articles",
			ErrContract, len(classifications), len(articles))
	}

	var relevant []domain.Article
	for i := range articles {
		article := articles[i]
		c := classifications[i]

		if err := store.UpdateClassification(ctx, article.ID, c.Relevant, c.Category); err != nil {
			lgr.Printf("[WARN] failed to persist classification for %s: %v", article.URL, err)
			continue
		}

		if c.Relevant {
			article.ApplyClassification(c)
			relevant = append(relevant, article)
		}
	}

	return relevant, nil
}

// analyze fetches detail content and requests impact analysis per relevant
// article. A failure leaves that article without analysis fields, so it is
// excluded from notification while keeping its persisted classification.
func (p *Pipeline) analyze(ctx context.Context, store Store, relevant []domain.Article) {
	for i := range relevant {
		article := &relevant[i]

		content, err := p.extractor.Extract(ctx, article.URL)
		if err != nil {
			lgr.Printf("[WARN] content extraction failed for %s: %v", article.URL, err)
			continue
		}

		analysis, err := p.analyzer.Analyze(ctx, article.SourceName, article.Title, content)
		if err != nil {
			lgr.Printf("[WARN] impact analysis failed for %s: %v", article.URL, err)
			continue
		}

		if err := store.UpdateAnalysis(ctx, article.ID, analysis); err != nil {
			lgr.Printf("[WARN] failed to persist analysis for %s: %v", article.URL, err)
			continue
		}
		article.ApplyAnalysis(analysis)
	}
}

// notifyPending broadcasts every relevant, analyzed, never-notified article
// in batches of at most notify.BatchLimit. The set comes from the store, so
// articles whose broadcast failed on an earlier run are retried here. An
// article is marked notified only after its batch's broadcast succeeds.
func (p *Pipeline) notifyPending(ctx context.Context, store Store) int {
	pending, err := store.AwaitingNotify(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to load articles awaiting notify: %v", err)
		return 0
	}
	if len(pending) == 0 {
		return 0
	}

	notified := 0
	for batchNum := 0; len(pending) > 0; batchNum++ {
		batch := pending
		if len(batch) > notify.BatchLimit {
			batch = batch[:notify.BatchLimit]
		}
		pending = pending[len(batch):]

		if batchNum > 0 && p.pacing > 0 {
			select {
			case <-time.After(p.pacing):
			case <-ctx.Done():
				return notified
			}
		}

		messages := make([]notify.Message, len(batch))
		for i := range batch {
			messages[i] = notify.FormatArticle(&batch[i])
		}

		if err := p.broadcast.Broadcast(ctx, messages); err != nil {
			lgr.Printf("[WARN] broadcast failed for batch %d, %d articles stay pending: %v",
				batchNum, len(batch), err)
			continue
		}

		for i := range batch {
			if err := store.MarkNotified(ctx, batch[i].ID); err != nil {
				lgr.Printf("[WARN] failed to mark notified for %s: %v", batch[i].URL, err)
			}
		}
		notified += len(batch)
	}

	return notified
}
