package filehost

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// GitHub commits files to a repository via the contents API and serves them
// through raw.githubusercontent.com URLs.
type GitHub struct {
	client *github.Client
	owner  string
	repo   string
	branch string
}

// NewGitHub builds a GitHub host from a personal access token with contents
// write permission on the target repository.
func NewGitHub(ctx context.Context, token, owner, repo, branch string) *GitHub {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &GitHub{
		client: github.NewClient(tc),
		owner:  owner,
		repo:   repo,
		branch: branch,
	}
}

func (g *GitHub) Upload(ctx context.Context, folder, name string, data []byte) (string, error) {
	path := folder + "/" + name

	opts := &github.RepositoryContentFileOptions{
		Message: github.String("upload " + path),
		Content: data,
		Branch:  github.String(g.branch),
	}

	// Overwriting an existing file requires its blob SHA.
	if sha, err := g.contentSHA(ctx, path); err == nil {
		opts.SHA = github.String(sha)
	}

	if _, _, err := g.client.Repositories.CreateFile(ctx, g.owner, g.repo, path, opts); err != nil {
		return "", fmt.Errorf("%w: commit %s: %v", ErrUnavailable, path, err)
	}

	return g.rawURL(path), nil
}

func (g *GitHub) Delete(ctx context.Context, folder, name string) error {
	path := folder + "/" + name

	sha, err := g.contentSHA(ctx, path)
	if err != nil {
		return err
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.String("delete " + path),
		SHA:     github.String(sha),
		Branch:  github.String(g.branch),
	}
	if _, _, err := g.client.Repositories.DeleteFile(ctx, g.owner, g.repo, path, opts); err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrUnavailable, path, err)
	}
	return nil
}

// contentSHA fetches the blob SHA of an existing file.
func (g *GitHub) contentSHA(ctx context.Context, path string) (string, error) {
	fc, _, resp, err := g.client.Repositories.GetContents(ctx, g.owner, g.repo, path,
		&github.RepositoryContentGetOptions{Ref: g.branch})
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: stat %s: %v", ErrUnavailable, path, err)
	}
	if fc == nil || fc.SHA == nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return *fc.SHA, nil
}

// rawURL builds the public URL for a committed path.
func (g *GitHub) rawURL(path string) string {
	u := url.URL{
		Scheme: "https",
		Host:   "raw.githubusercontent.com",
		Path:   fmt.Sprintf("/%s/%s/%s/%s", g.owner, g.repo, g.branch, path),
	}
	return u.String()
}
