package repository

import (
	"context"
	"fmt"

	"skillax-backend/internal/domains/blog/model"
	"skillax-backend/internal/shared/utils"
	"skillax-backend/pkg/docstore"
)

type Repository interface {
	Create(ctx context.Context, post *model.BlogPost) error
	ListPublished(ctx context.Context, filter model.ListFilter) ([]model.BlogPost, error)
	ListAll(ctx context.Context) ([]model.BlogPost, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	FindByID(ctx context.Context, id string) (*model.BlogPost, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, id string, patch map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type docRepo struct {
	store docstore.Store
}

func NewRepository(store docstore.Store) Repository {
	return &docRepo{store: store}
}

func (r *docRepo) Create(ctx context.Context, post *model.BlogPost) error {
	doc, err := utils.ToDoc(post)
	if err != nil {
		return err
	}
	if err := r.store.Insert(ctx, model.Collection, doc); err != nil {
		return fmt.Errorf("insert blog post: %w", err)
	}
	return nil
}

func (r *docRepo) ListPublished(ctx context.Context, filter model.ListFilter) ([]model.BlogPost, error) {
	storeFilter := docstore.Filter{"published": true}
	if filter.Category != "" {
		storeFilter["category"] = filter.Category
	}
	return r.list(ctx, storeFilter, docstore.FindOptions{
		SortField: "created_at",
		SortDesc:  true,
		Skip:      filter.Skip,
		Limit:     filter.Limit,
	})
}

func (r *docRepo) ListAll(ctx context.Context) ([]model.BlogPost, error) {
	return r.list(ctx, docstore.Filter{}, docstore.FindOptions{
		SortField: "created_at",
		SortDesc:  true,
	})
}

func (r *docRepo) list(ctx context.Context, filter docstore.Filter, opts docstore.FindOptions) ([]model.BlogPost, error) {
	docs, err := r.store.FindMany(ctx, model.Collection, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	posts := make([]model.BlogPost, 0, len(docs))
	for _, doc := range docs {
		var post model.BlogPost
		if err := utils.FromDoc(doc, &post); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *docRepo) FindPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	return r.findOne(ctx, docstore.Filter{"slug": slug, "published": true})
}

func (r *docRepo) FindByID(ctx context.Context, id string) (*model.BlogPost, error) {
	return r.findOne(ctx, docstore.Filter{"id": id})
}

func (r *docRepo) findOne(ctx context.Context, filter docstore.Filter) (*model.BlogPost, error) {
	doc, err := r.store.FindOne(ctx, model.Collection, filter)
	if err != nil {
		return nil, fmt.Errorf("find blog post: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	var post model.BlogPost
	if err := utils.FromDoc(doc, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *docRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	n, err := r.store.Count(ctx, model.Collection, docstore.Filter{"slug": slug})
	if err != nil {
		return false, fmt.Errorf("check blog slug: %w", err)
	}
	return n > 0, nil
}

func (r *docRepo) Update(ctx context.Context, id string, patch map[string]any) (int64, error) {
	matched, err := r.store.UpdateOne(ctx, model.Collection, docstore.Filter{"id": id}, patch)
	if err != nil {
		return 0, fmt.Errorf("update blog post: %w", err)
	}
	return matched, nil
}

func (r *docRepo) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := r.store.DeleteOne(ctx, model.Collection, docstore.Filter{"id": id})
	if err != nil {
		return 0, fmt.Errorf("delete blog post: %w", err)
	}
	return deleted, nil
}

func (r *docRepo) CountAll(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, model.Collection, docstore.Filter{})
}
