package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"agenz_site/config"
	"agenz_site/db"
	"agenz_site/models"
	"agenz_site/services"
)

// export-leads writes archived submissions to an XLSX workbook, optionally uploading it to storage
func main() {
	out := flag.String("out", "", "write the workbook to this file")
	upload := flag.Bool("upload", false, "upload the workbook to the configured storage (R2 or EXPORT_DIR)")
	since := flag.String("since", "", "only include submissions received on or after this date (YYYY-MM-DD)")
	formType := flag.String("form", "", "only include one form type (lead-form or contact-form)")
	flag.Parse()

	if *out == "" && !*upload {
		fmt.Fprintln(os.Stderr, "nothing to do: pass -out and/or -upload")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()

	filters := services.SubmissionFilters{}
	if *since != "" {
		t, err := services.ParseDate(*since, services.ExportLocation())
		if err != nil {
			log.Fatalf("Invalid -since: %v", err)
		}
		filters.Since = &t
	}
	switch *formType {
	case "":
	case models.FormTypeLead, models.FormTypeContact:
		filters.FormType = *formType
	default:
		log.Fatalf("Unknown form type %q", *formType)
	}

	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	records, err := services.GetSubmissionsForExport(db.DB, filters)
	if err != nil {
		log.Fatalf("Failed to load submissions: %v", err)
	}

	buf, err := services.GenerateLeadWorkbook(records, services.ExportLocation())
	if err != nil {
		log.Fatalf("Failed to generate workbook: %v", err)
	}
	data := buf.Bytes()
	log.Printf("Exported %d submissions (%d bytes)", len(records), len(data))

	if *out != "" {
		if err := os.WriteFile(*out, data, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", *out, err)
		}
		log.Printf("Workbook written to %s", *out)
	}

	if *upload {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		storage := services.NewStorage(cfg)
		key := services.GenerateExportKey(time.Now())
		result, err := storage.UploadReader(ctx, bytes.NewReader(data), key, services.XLSXContentType, int64(len(data)))
		if err != nil {
			log.Fatalf("Failed to upload workbook: %v", err)
		}

		link := result.URL
		if link == "" {
			if link, err = storage.GetSignedURL(ctx, result.Key, 24*time.Hour); err != nil {
				log.Printf("[WARNING] Failed to sign download URL: %v", err)
			}
		}
		log.Printf("Workbook uploaded as %s", result.Key)
		if link != "" {
			fmt.Println(link)
		}
	}
}
