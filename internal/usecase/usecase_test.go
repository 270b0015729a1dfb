package usecase

import (
	"context"
	"errors"
	"sync"

	"PostCraft/internal/domain"
	"PostCraft/internal/ports"
)

type fakeExtractor struct {
	blog  domain.BlogContent
	err   error
	mu    sync.Mutex
	calls []string
}

func (f *fakeExtractor) Extract(_ context.Context, url string) (domain.BlogContent, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	f.mu.Unlock()
	if f.err != nil {
		return domain.BlogContent{}, f.err
	}
	blog := f.blog
	blog.URL = url
	return blog, nil
}

type fakeProvider struct {
	name    string
	reply   string
	err     error
	mu      sync.Mutex
	prompts []string
	opts    []ports.GenerateOptions
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(_ context.Context, prompt string, opts ports.GenerateOptions) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.opts = append(f.opts, opts)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

var errProviderDown = errors.New("provider down")
