package main

import (
	"fmt"

	"rfpdocs/internal/domain"
	"rfpdocs/internal/view"
)

func renderList(list *view.ListModel) {
	docs := list.Documents()
	if len(docs) == 0 {
		fmt.Println("No documents uploaded yet.")
		return
	}
	for _, doc := range docs {
		display := doc.Status.Display()
		marker := " "
		if list.CanOpen(doc) {
			marker = "*"
		}
		fmt.Printf("%s %-36s  %-10s  %-8s  %s  %s\n",
			marker,
			doc.ID,
			display.Label,
			domain.FormatFileSize(doc.FileSize),
			domain.FormatDate(doc.UploadedAt),
			doc.OriginalFilename,
		)
	}
	fmt.Println("\n* completed documents can be opened with: rfpctl get <id>")
}

func renderDetail(v view.DetailView) {
	switch v.Kind {
	case view.ViewLoading:
		fmt.Println("Loading...")
		return
	case view.ViewError:
		fmt.Printf("Error: %s\n", v.Message)
		fmt.Println("Run 'rfpctl list' to go back to the document list.")
		return
	}

	doc := v.Document
	fmt.Printf("%s\n", doc.OriginalFilename)
	fmt.Printf("%s  %s  Uploaded %s  [%s]\n\n",
		domain.FileTypeLabel(doc.ContentType),
		domain.FormatFileSize(doc.FileSize),
		domain.FormatDate(doc.UploadedAt),
		doc.Status.Display().Label,
	)

	switch v.Kind {
	case view.ViewProcessing, view.ViewNotStarted, view.ViewNoExtraction:
		fmt.Println(v.Message)
	case view.ViewFailed:
		fmt.Printf("Extraction failed: %s\n", v.Message)
	case view.ViewExtraction:
		renderExtraction(v.Extraction)
	}
}

func renderExtraction(ex *domain.Extraction) {
	fmt.Println("Extraction Results")
	fmt.Println("------------------")
	if ex.PageCount != nil {
		fmt.Printf("Pages: %d\n", *ex.PageCount)
	}
	if ex.SheetCount != nil {
		fmt.Printf("Sheets: %d\n", *ex.SheetCount)
	}
	if ex.CharacterCount != nil {
		fmt.Printf("Characters: %d\n", *ex.CharacterCount)
	}
	if ex.TableCount != nil {
		fmt.Printf("Tables: %d\n", *ex.TableCount)
	}

	if pairs := ex.KeyValues(); len(pairs) > 0 {
		fmt.Println("\nKey Values")
		for _, p := range pairs {
			fmt.Printf("  %s: %s\n", p.Key, p.Value)
		}
	}

	for _, t := range ex.Tables() {
		fmt.Printf("\nTable: %s\n", t.Name)
		for _, row := range t.Rows {
			for i, cellValue := range row {
				if i > 0 {
					fmt.Print(" | ")
				}
				fmt.Print(cellValue)
			}
			fmt.Println()
		}
	}

	if ex.ExtractedText != "" {
		fmt.Println("\nExtracted Text")
		fmt.Println(ex.ExtractedText)
	}
}
