package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/freight-parser/app/config"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/search"
)

// Seeds the Meilisearch places index from the compiled-in gazetteer:
// applies index settings, pushes every province and district document,
// and waits for indexing to finish before exiting.
func main() {
	_ = godotenv.Load()
	if err := config.Load("config/parser.yaml"); err != nil {
		log.Fatal("Không thể load config:", err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	searchConfig := search.SearchConfig{
		Host:          config.C.Meili.URL,
		APIKey:        config.C.Meili.MasterKey,
		IndexName:     config.C.Meili.IndexName,
		Timeout:       time.Duration(config.C.Meili.TimeoutSeconds) * time.Second,
		MaxCandidates: 20,
	}

	searcher, err := search.NewPlaceSearcher(searchConfig, logger)
	if err != nil {
		log.Fatal("Không thể kết nối Meilisearch:", err)
	}
	fmt.Printf("Đã kết nối Meilisearch tại %s (index %q)\n", searchConfig.Host, searchConfig.IndexName)

	// Apply index settings before any documents go in
	fmt.Println("Đang cấu hình Meilisearch index settings...")
	if err := searcher.BuildIndexes(); err != nil {
		log.Fatal("Lỗi cập nhật settings:", err)
	}

	// Build documents from the gazetteer
	gaz := gazetteer.New()
	docs := search.DocsFromGazetteer(gaz)
	fmt.Printf("Gazetteer %s: %d documents (tỉnh + huyện)\n", gazetteer.DataVersion, len(docs))

	fmt.Println("Đang seed dữ liệu vào Meilisearch...")
	taskUIDs, err := searcher.SeedData(docs)
	if err != nil {
		log.Fatal("Lỗi seed data:", err)
	}

	// Wait for every batch task so the tool never exits mid-index
	fmt.Println("Đang chờ indexing hoàn thành...")
	for _, uid := range taskUIDs {
		if err := searcher.WaitForTask(uid); err != nil {
			log.Fatal("Lỗi indexing:", err)
		}
	}

	fmt.Printf("Hoàn thành! Đã seed %d documents vào Meilisearch\n", len(docs))
}
