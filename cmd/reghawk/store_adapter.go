package main

import (
	"context"

	"github.com/nwebcraft/reghawk/pkg/domain"
	"github.com/nwebcraft/reghawk/pkg/pipeline"
	"github.com/nwebcraft/reghawk/pkg/repository"
)

// storeAdapter flattens the repository store into the pipeline's Store
// interface
type storeAdapter struct {
	store *repository.Store
}

func (a *storeAdapter) ActiveFeedSources(ctx context.Context) ([]domain.FeedSource, error) {
	return a.store.Sources.ActiveFeedSources(ctx)
}

func (a *storeAdapter) TouchLastFetched(ctx context.Context, sourceKey string) error {
	return a.store.Sources.TouchLastFetched(ctx, sourceKey)
}

func (a *storeAdapter) InsertIfNew(ctx context.Context, item domain.FeedItem, source domain.FeedSource) (*domain.Article, bool, error) {
	return a.store.Articles.InsertIfNew(ctx, item, source)
}

func (a *storeAdapter) UpdateClassification(ctx context.Context, articleID int64, relevant bool, category *string) error {
	return a.store.Articles.UpdateClassification(ctx, articleID, relevant, category)
}

func (a *storeAdapter) UpdateAnalysis(ctx context.Context, articleID int64, analysis domain.Analysis) error {
	return a.store.Articles.UpdateAnalysis(ctx, articleID, analysis)
}

func (a *storeAdapter) MarkNotified(ctx context.Context, articleID int64) error {
	return a.store.Articles.MarkNotified(ctx, articleID)
}

func (a *storeAdapter) AwaitingNotify(ctx context.Context) ([]domain.Article, error) {
	return a.store.Articles.AwaitingNotify(ctx)
}

func (a *storeAdapter) Close() error {
	return a.store.Close()
}

// storeOpener acquires the store at run start; the pipeline releases it on
// every exit path
func storeOpener(cfg repository.Config) func(ctx context.Context) (pipeline.Store, error) {
	return func(ctx context.Context) (pipeline.Store, error) {
		store, err := repository.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &storeAdapter{store: store}, nil
	}
}
