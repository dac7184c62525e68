package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"menuiserie_back_end/internal/database"
	"menuiserie_back_end/internal/models"
)

const productIndex = "products"

// ProductSearch : indexation et recherche de produits. Implémentation
// Elasticsearch en production ; les handlers retombent sur un filtre
// en mémoire quand la recherche échoue ou est désactivée.
type ProductSearch interface {
	Index(p models.Product)
	Remove(id string)
	Search(query string) ([]models.Product, error)
}

type elasticSearch struct{}

func NewElasticSearch() ProductSearch {
	return &elasticSearch{}
}

// Index indexe un produit dans Elasticsearch. Appelé en goroutine
// depuis les handlers d'admin : une erreur n'empêche jamais la
// création du produit.
func (e *elasticSearch) Index(p models.Product) {
	if database.Elastic == nil {
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: p.ID.String(),
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur envoi Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", p.Name, res.String())
	} else {
		log.Printf("✅ Produit indexé dans Elasticsearch: %s", p.Name)
	}
}

// Remove retire un produit supprimé de l'index.
func (e *elasticSearch) Remove(id string) {
	if database.Elastic == nil {
		return
	}

	req := esapi.DeleteRequest{
		Index:      productIndex,
		DocumentID: id,
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur suppression Elastic:", err)
		return
	}
	defer res.Body.Close()
}

// Search cherche des produits par nom ou description.
func (e *elasticSearch) Search(query string) ([]models.Product, error) {
	if database.Elastic == nil {
		return nil, errors.New("client Elasticsearch non initialisé")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description"},
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndex},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.New("index non trouvé ou vide")
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %v", err)
	}

	products := make([]models.Product, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		products = append(products, hit.Source)
	}
	return products, nil
}
