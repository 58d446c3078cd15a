package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"medichat-rag/internal/catalog"
	"medichat-rag/internal/config"
	"medichat-rag/internal/embedding"
	"medichat-rag/internal/extractor"
	"medichat-rag/internal/helper"
	"medichat-rag/internal/hub"
	"medichat-rag/internal/llm"
	"medichat-rag/internal/models"
	"medichat-rag/internal/rag"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded .env")
	}

	collection := flag.String("collection", "medical", "Collection to work with: medical, medicine or hospital")
	files := flag.String("files", "", "Comma-separated document files to upload into the collection")
	query := flag.String("query", "", "Question to answer from the uploaded documents")
	medicine := flag.String("medicine", "", "Catalog medicine to search for in the uploaded documents")
	list := flag.Bool("list", false, "List the PDFs in the collection's resource folder")
	zipOut := flag.String("zip", "", "Write the uploaded files as a zip archive to this path")
	htmlOut := flag.String("html", "", "Write the answer and document previews as an HTML page to this path")
	catalogOut := flag.String("export-catalog", "", "Write the medicine/hospital catalog as xlsx to this path")
	flag.Parse()

	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	ctx := context.Background()

	if *catalogOut != "" {
		exportCatalog(*catalogOut)
		return
	}

	if *list {
		listCollection(cfg, *collection)
		return
	}

	if *files == "" {
		log.Fatal().Msg("Please provide documents with the -files flag")
	}

	library := hub.NewLibrary("medical", "medicine", "hospital")
	batch := readBatch(strings.Split(*files, ","))
	entries, err := library.AddToCollection(*collection, batch)
	if err != nil {
		log.Fatal().Err(err).Msg("Error adding to collection")
	}
	log.Info().Int("files", len(entries)).Str("collection", *collection).Msg("Added to library")
	helper.PrettyPrint(entries)

	if *zipOut != "" {
		writeZip(library, *collection, *zipOut)
		return
	}

	question := strings.TrimSpace(*query)
	if *medicine != "" {
		question = catalog.QueryHint(*medicine)
	}
	if question == "" {
		log.Fatal().Msg("Please provide a question with the -query flag or a catalog medicine with -medicine")
	}

	answerQuery(ctx, cfg, library, *collection, question, *htmlOut)
}

func answerQuery(ctx context.Context, cfg *config.Config, library *hub.Library, collection, question, htmlOut string) {
	embedder, err := embedding.NewEmbedder(&cfg.EmbedLLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing embedder")
	}
	generator, err := llm.NewGenerator(&cfg.ChatLLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Chat model init failed")
	}

	pipeline := rag.NewPipeline(extractor.DefaultRegistry(), embedding.Func(embedder), generator, rag.Options{
		ChunkSize:    cfg.RAG.ChunkSize,
		ChunkOverlap: cfg.RAG.ChunkOverlap,
		TopK:         cfg.RAG.TopK,
		Persona:      cfg.RAG.Persona,
	})

	answer, err := pipeline.Ask(ctx, library.QueryBatch(collection), question)
	if err != nil {
		log.Fatal().Err(err).Msg("Error answering query")
	}

	log.Info().Msg("Query: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
	fmt.Printf("%s\n\n", answer.Query)

	log.Info().Msg("Context: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
	fmt.Printf("%s\n\n", strings.Join(answer.Context, "\n\n"))

	log.Info().Msg("Assistant: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
	fmt.Printf("%s\n\n", answer.Content)

	if htmlOut != "" {
		page, err := library.AnswerPage(collection, answer.Content)
		if err != nil {
			log.Fatal().Err(err).Msg("Error rendering answer page")
		}
		if err := os.WriteFile(htmlOut, []byte(page), 0o644); err != nil {
			log.Fatal().Err(err).Msg("Error writing answer page")
		}
		log.Info().Str("path", htmlOut).Msg("Wrote answer page")
	}
}

func listCollection(cfg *config.Config, collection string) {
	dirs := hub.ResolveDirs(cfg.Collections)
	dir, ok := dirs[collection]
	if !ok {
		log.Fatal().Str("collection", collection).Msg("Unknown collection")
	}

	items := hub.ListFolder(dir)
	if len(items) == 0 {
		fmt.Println("No PDFs found in", dir)
		return
	}
	for _, item := range items {
		fmt.Printf("%-40s %10s %6d pages  %s\n",
			item.Name, helper.HumanSize(item.Size), item.Pages,
			item.UploadedAt.Format("2006-01-02 15:04:05"))
	}
}

func writeZip(library *hub.Library, collection, out string) {
	data, err := library.Zip(collection)
	if err != nil {
		log.Fatal().Err(err).Msg("Error packaging zip")
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("Error writing zip")
	}
	log.Info().Str("path", out).Msg("Wrote archive")
}

func exportCatalog(out string) {
	data, err := catalog.ExportXLSX()
	if err != nil {
		log.Fatal().Err(err).Msg("Error exporting catalog")
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("Error writing catalog")
	}
	log.Info().Str("path", out).Msg("Wrote catalog")
}

func readBatch(paths []string) []models.Document {
	var batch []models.Document
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			log.Warn().Err(err).Str("file", p).Msg("Skipping unreadable file")
			continue
		}
		batch = append(batch, models.Document{Name: filepath.Base(p), Data: data})
	}
	return batch
}
