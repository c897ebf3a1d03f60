package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/2beens/postclient/internal/dialog"
	"github.com/2beens/postclient/internal/post"

	log "github.com/sirupsen/logrus"
)

var errUsage = errors.New("usage")

const usageText = `usage: postclient [flags] <command> [args]

commands:
  list                  list all posts
  find <id>             show one post
  create <json>         create a post, e.g. '{"title":"t","body":"b","userId":1}'
  update <id> <json>    replace a post
  delete <id>           delete a post, after confirmation

flags:
`

// run executes one command and writes its JSON result to out.
func run(ctx context.Context, client *post.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	command, args := args[0], args[1:]
	switch command {
	case "list":
		if err := expectArgs(command, args, 0); err != nil {
			return err
		}
		posts, err := client.ListAll(ctx)
		if err != nil {
			return err
		}
		return writeJSON(out, posts)
	case "find":
		if err := expectArgs(command, args, 1); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		found, err := client.Find(ctx, id)
		if err != nil {
			return err
		}
		return writeJSON(out, found)
	case "create":
		if err := expectArgs(command, args, 1); err != nil {
			return err
		}
		newPost, err := parsePost(args[0])
		if err != nil {
			return err
		}
		created, err := client.Create(ctx, newPost)
		if err != nil {
			return err
		}
		return writeJSON(out, created)
	case "update":
		if err := expectArgs(command, args, 2); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		updatedPost, err := parsePost(args[1])
		if err != nil {
			return err
		}
		updated, err := client.Update(ctx, id, updatedPost)
		if err != nil {
			return err
		}
		return writeJSON(out, updated)
	case "delete":
		if err := expectArgs(command, args, 1); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		deleted, err := client.Remove(ctx, id)
		if err != nil {
			return err
		}
		if deleted == nil {
			log.Infof("delete of post %d cancelled", id)
			return nil
		}
		return writeJSON(out, deleted)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func expectArgs(command string, args []string, count int) error {
	if len(args) != count {
		return fmt.Errorf("%w: %s expects %d argument(s), got %d", errUsage, command, count, len(args))
	}
	return nil
}

func checkLang(lang string) error {
	if !dialog.IsSupportedLang(lang) {
		return fmt.Errorf(
			"%w: unsupported language %q, expected one of: %s",
			errUsage, lang, strings.Join(dialog.SupportedLangs(), ", "),
		)
	}
	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: post id %q is not a number", errUsage, s)
	}
	return id, nil
}

func parsePost(s string) (post.Post, error) {
	var p post.Post
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return nil, fmt.Errorf("%w: post must be a json object: %s", errUsage, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: post must be a json object", errUsage)
	}
	return p, nil
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
