// Command rfpctl is a terminal client for the RFP document-management
// service: upload documents, list them, inspect extraction results, and
// export extractions to CSV or XLSX.
//
// Usage:
//
//	rfpctl whoami
//	rfpctl list
//	rfpctl get <document-id>
//	rfpctl upload <path>
//	rfpctl delete [-y] <document-id>
//	rfpctl export [-format csv|xlsx] [-o file] <document-id>
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"rfpdocs/internal/api"
	"rfpdocs/internal/auth"
	"rfpdocs/internal/config"
	"rfpdocs/internal/domain"
	"rfpdocs/internal/export"
	"rfpdocs/internal/upload"
	"rfpdocs/internal/view"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	client := api.New(&cfg.API, auth.FromConfig(&cfg.Auth))
	ctx := context.Background()

	switch args[0] {
	case "whoami":
		return runWhoami(ctx, client)
	case "list":
		return runList(ctx, client)
	case "get":
		return runGet(ctx, client, args[1:])
	case "upload":
		return runUpload(ctx, cfg, client, args[1:])
	case "delete":
		return runDelete(ctx, client, args[1:])
	case "export":
		return runExport(ctx, client, args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: rfpctl <whoami|list|get|upload|delete|export> [args]")
}

func runWhoami(ctx context.Context, client *api.Client) error {
	info, err := client.Whoami(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Tenant: %s\n", info.Tenant)
	if info.OrgID != "" {
		fmt.Printf("Org ID: %s\n", info.OrgID)
	}
	if info.OrgSlug != "" {
		fmt.Printf("Org slug: %s\n", info.OrgSlug)
	}
	return nil
}

func runList(ctx context.Context, client *api.Client) error {
	list := view.NewListModel(client)
	list.Load(ctx)
	renderList(list)
	return nil
}

func runGet(ctx context.Context, client *api.Client, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	detail := view.NewDetailModel(client, id)
	detail.Load(ctx)
	renderDetail(detail.View())
	return nil
}

func runUpload(ctx context.Context, cfg *config.Config, client *api.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: rfpctl upload <path>")
	}
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	stat, err := f.Stat()
	if err != nil {
		return err
	}

	list := view.NewListModel(client)
	machine := upload.NewMachine(client, cfg.Upload.SettleDelay,
		func(resp *domain.UploadResponse) {
			fmt.Println()
			list.HandleUploadSuccess(ctx, resp)
		},
		func(msg string) {
			fmt.Println()
			list.HandleUploadError(msg)
		},
	)

	in := api.UploadInput{
		Filename:    filepath.Base(path),
		ContentType: contentTypeFor(path),
		Size:        stat.Size(),
		Body:        f,
	}
	_ = machine.Upload(ctx, in) // outcome is reported via the banners

	if msg, ok := list.SuccessMessage(); ok {
		fmt.Println(msg)
		renderList(list)
		return nil
	}
	if msg, ok := list.ErrorMessage(); ok {
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func runDelete(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	yes := fs.Bool("y", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseID(fs.Args())
	if err != nil {
		return err
	}

	list := view.NewListModel(client)
	list.Load(ctx)
	if msg, ok := list.ErrorMessage(); ok {
		return fmt.Errorf("%s", msg)
	}
	if !list.RequestDelete(id) {
		return fmt.Errorf("document %s not found", id)
	}

	pending, _ := list.PendingDelete()
	if !*yes {
		fmt.Printf("Delete %q? [y/N] ", pending.Document.OriginalFilename)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) != "y" {
			list.CancelDelete()
			fmt.Println("Aborted.")
			return nil
		}
	}

	list.ConfirmDelete(ctx)
	if msg, ok := list.ErrorMessage(); ok {
		return fmt.Errorf("%s", msg)
	}
	if msg, ok := list.SuccessMessage(); ok {
		fmt.Println(msg)
	}
	renderList(list)
	return nil
}

func runExport(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	format := fs.String("format", "csv", "output format: csv or xlsx")
	out := fs.String("o", "", "output file (default derived from the document name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := parseID(fs.Args())
	if err != nil {
		return err
	}

	doc, err := client.GetDocument(ctx, id)
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "Failed to load document"))
	}
	ex, err := client.GetExtraction(ctx, id)
	if err != nil {
		return fmt.Errorf("%s", api.ErrorMessage(err, "No extraction data available for this document."))
	}

	switch *format {
	case "csv":
		path := *out
		if path == "" {
			path = export.BuildFilename(doc.OriginalFilename, "csv")
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		if _, err := f.Write(export.BOM); err != nil {
			return err
		}
		w := export.NewCSVWriter(f)
		if err := w.WriteExtraction(ex); err != nil {
			return err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
	case "xlsx":
		path := *out
		if path == "" {
			path = export.BuildFilename(doc.OriginalFilename, "xlsx")
		}
		wb, err := export.BuildWorkbook(ex)
		if err != nil {
			return err
		}
		if err := wb.SaveAs(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
	default:
		return fmt.Errorf("unknown format %q (want csv or xlsx)", *format)
	}
	return nil
}

func parseID(args []string) (uuid.UUID, error) {
	if len(args) != 1 {
		return uuid.Nil, fmt.Errorf("expected a single document id")
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid document id %q: %w", args[0], err)
	}
	return id, nil
}

// contentTypeFor maps a file extension to the MIME type declared on upload.
// Unknown extensions pass through as octet-stream and get rejected by
// client-side validation, which produces the friendlier message.
func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return domain.ContentTypePDF
	case ".doc":
		return domain.ContentTypeDOC
	case ".docx":
		return domain.ContentTypeDOCX
	case ".xlsx":
		return domain.ContentTypeXLSX
	case ".txt":
		return domain.ContentTypeTXT
	default:
		return "application/octet-stream"
	}
}
