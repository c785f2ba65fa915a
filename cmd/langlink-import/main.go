package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	langlink "github.com/goliatone/go-langlink"
	"github.com/goliatone/go-langlink/cmd/internal/bootstrap"
)

var moduleBuilder bootstrap.ModuleBuilder = bootstrap.BuildModule

func main() {
	if err := runImport(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("langlink import: %v", err)
	}
}

func runImport(ctx context.Context, args []string, out io.Writer) error {
	var shared bootstrap.Flags
	fs := flag.NewFlagSet("langlink-import", flag.ExitOnError)
	shared.Register(fs)
	directory := fs.String("directory", "content", "Markdown content root")
	contentType := fs.String("type", "post", "Content type for documents without a type key")
	status := fs.String("status", "", "Status for documents without a status key")
	languages := fs.String("languages", "", "Comma separated language tags recognised as leading directories")
	defaultLanguage := fs.String("default-language", "", "Language for documents that do not name one")
	recursive := fs.Bool("recursive", true, "Traverse sub-directories")
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(shared.Config())
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	result, err := module.ImportMarkdown(ctx, langlink.ImportDirectoryCommand{
		Directory:       *directory,
		DefaultType:     *contentType,
		DefaultStatus:   *status,
		DefaultLanguage: *defaultLanguage,
		Languages:       bootstrap.SplitList(*languages),
		Recursive:       *recursive,
	})
	if result != nil {
		for _, item := range result.Items {
			if item.Err != nil {
				fmt.Fprintf(out, "%s\terror\t%v\n", item.Path, item.Err)
				continue
			}
			fmt.Fprintf(out, "%s\t%d\t%s\t%s\n", item.Path, item.ID, item.Language, item.Link)
		}
		fmt.Fprintf(out, "imported %d documents, linked %d, errors %d\n", len(result.Items), result.Linked(), len(result.Errors))
	}
	if err != nil {
		return fmt.Errorf("execute import command: %w", err)
	}
	return nil
}
