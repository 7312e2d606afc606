package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"propertychat/internal/config"
	"propertychat/internal/flow"
	"propertychat/internal/model"
	"propertychat/internal/repository"
	"propertychat/internal/utils"
	"propertychat/pkg/log"
)

var dataURLRe = regexp.MustCompile(`^data:([\w.+-]+/[\w.+-]+)?(?:;[\w=-]+)*;base64,(.+)$`)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// listingAgent is the contact put on listings created through the wizard
var listingAgent = model.Agent{
	Name:    "Listing Assistant",
	Company: "PropertyChat Realty",
	Phone:   "(415) 555-0100",
	Email:   "listings@propertychat.example",
}

// OnboardingService runs the seller listing wizard: upload, generate, review, publish
type OnboardingService struct {
	drafts  repository.Store[model.ListingDraft]
	catalog repository.PropertyRepository
	cfg     config.ListingConfig
	now     func() time.Time
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(
	drafts repository.Store[model.ListingDraft],
	catalog repository.PropertyRepository,
	cfg config.ListingConfig,
) *OnboardingService {
	return &OnboardingService{
		drafts:  drafts,
		catalog: catalog,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Upload validates images and description and stores a new draft at the upload step
func (s *OnboardingService) Upload(ctx context.Context, req model.ListingUploadRequest) (*model.ListingDraft, error) {
	if msgs := s.validateUpload(req); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	now := s.now().UTC()
	draft := &model.ListingDraft{
		ID:          newListingID(),
		Step:        model.StepUpload,
		Images:      req.Images,
		Description: strings.TrimSpace(req.Description),
		UserPrompt:  req.UserPrompt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.drafts.Save(ctx, draft.ID, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	log.Infow("Listing uploaded", "draft_id", draft.ID, "images", len(draft.Images))
	return draft, nil
}

// validateUpload returns every problem with req, in the order the form shows them
func (s *OnboardingService) validateUpload(req model.ListingUploadRequest) []string {
	var msgs []string

	switch {
	case len(req.Images) == 0:
		msgs = append(msgs, "Please upload at least one image")
	case len(req.Images) > s.cfg.MaxImages:
		msgs = append(msgs, fmt.Sprintf("Maximum %d images allowed", s.cfg.MaxImages))
	}

	for i, img := range req.Images {
		if msg := s.validateImage(img); msg != "" {
			msgs = append(msgs, fmt.Sprintf("Image %d: %s", i+1, msg))
		}
	}

	if len(strings.TrimSpace(req.Description)) < s.cfg.MinDescriptionLen {
		msgs = append(msgs, fmt.Sprintf("Please provide a description of at least %d characters", s.cfg.MinDescriptionLen))
	}
	return msgs
}

func (s *OnboardingService) validateImage(dataURL string) string {
	m := dataURLRe.FindStringSubmatch(dataURL)
	if m == nil {
		return "Images must be sent as base64 data URLs"
	}
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return "Image data is not valid base64"
	}
	if len(data) > s.cfg.MaxImageBytes {
		return fmt.Sprintf("File size must be less than %dMB", s.cfg.MaxImageBytes>>20)
	}
	// the declared type is ignored, the bytes decide
	if !mimetype.EqualsAny(mimetype.Detect(data).String(), allowedImageTypes...) {
		return "Only JPEG, PNG, and WebP images are allowed"
	}
	return ""
}

// CreateFromForm turns the answers of a seller conversation into a draft ready for review
func (s *OnboardingService) CreateFromForm(ctx context.Context, sessionID string, form model.FormData) (*model.ListingDraft, error) {
	now := s.now().UTC()
	draft := &model.ListingDraft{
		ID:          newListingID(),
		Step:        model.StepProcessing,
		Images:      []string{},
		Description: form[model.FieldDescription],
		FormData:    form,
		SessionID:   sessionID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.generate(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Get returns a draft or ErrDraftNotFound
func (s *OnboardingService) Get(ctx context.Context, id string) (*model.ListingDraft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

// Generate builds the proposed listing for an uploaded draft and moves it to review.
// Generating again while in review replaces the proposal.
func (s *OnboardingService) Generate(ctx context.Context, id string) (*model.ListingDraft, error) {
	draft, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step == model.StepCompleted {
		return nil, fmt.Errorf("%w: listing %s is already published", ErrInvalidStep, id)
	}

	draft.Step = model.StepProcessing
	if err := s.generate(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *OnboardingService) generate(ctx context.Context, draft *model.ListingDraft) error {
	start := time.Now()

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load comparables: %w", err)
	}

	generated := buildListing(draft, catalog, s.now().UTC())
	generated.ProcessingTime = math.Round(time.Since(start).Seconds()*100) / 100

	draft.Generated = generated
	draft.Step = model.StepReview
	draft.UpdatedAt = s.now().UTC()
	if err := s.drafts.Save(ctx, draft.ID, draft); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	log.Infow("Listing generated",
		"draft_id", draft.ID,
		"price", generated.Property.Price,
		"market_position", generated.PricingAnalysis.MarketPosition,
		"confidence", generated.ConfidenceScore,
	)
	return nil
}

// Status summarises a draft for polling clients
func (s *OnboardingService) Status(ctx context.Context, id string) (*model.ListingStatus, error) {
	draft, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.ListingStatus{
		PropertyID:        draft.ID,
		Status:            draft.Step,
		UploadedAt:        draft.CreatedAt.Format(time.RFC3339),
		ImagesCount:       len(draft.Images),
		DescriptionLength: len(draft.Description),
		Processed:         draft.Generated != nil,
	}, nil
}

// Publish adds the reviewed listing to the catalog
func (s *OnboardingService) Publish(ctx context.Context, id string) (*model.ListingDraft, error) {
	draft, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step != model.StepReview || draft.Generated == nil {
		return nil, fmt.Errorf("%w: listing %s is in step %s, want %s", ErrInvalidStep, id, draft.Step, model.StepReview)
	}

	p := draft.Generated.Property
	listing := model.ListingInfo{Agent: listingAgent}
	if p.Listing != nil {
		listing = *p.Listing
	}
	listing.Status = "Active"
	listing.DatePosted = s.now().UTC().Format("2006-01-02")
	p.Listing = &listing

	if err := s.catalog.SaveListing(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to publish listing: %w", err)
	}

	draft.Generated.Property = p
	draft.Step = model.StepCompleted
	draft.PublishedID = p.ID
	draft.UpdatedAt = s.now().UTC()
	if err := s.drafts.Save(ctx, draft.ID, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	log.Infow("Listing published", "draft_id", draft.ID, "property_id", p.ID)
	return draft, nil
}

// List returns every live draft
func (s *OnboardingService) List(ctx context.Context) ([]*model.ListingDraft, error) {
	drafts, err := s.drafts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	return drafts, nil
}

func newListingID() string {
	return "listing-" + uuid.NewString()
}

// listingFacts is what is known about a property, from form answers first and the description second
type listingFacts struct {
	propertyType string
	bedrooms     int
	bathrooms    int
	sqft         int
	price        float64
	features     []string
	location     model.PropertyLocation
	description  string
}

func readListingFacts(draft *model.ListingDraft) listingFacts {
	form := draft.FormData
	desc := firstNonEmpty(draft.Description, form[model.FieldDescription])
	text := desc + " " + draft.UserPrompt
	lower := strings.ToLower(text)

	f := listingFacts{
		description: desc,
		location: model.PropertyLocation{
			Address:      form[model.FieldAddress],
			City:         form[model.FieldCity],
			State:        form[model.FieldState],
			ZipCode:      form[model.FieldZipCode],
			Neighborhood: form[model.FieldNeighborhood],
		},
	}

	f.propertyType = form[model.FieldPropertyType]
	if f.propertyType == "" {
		f.propertyType = titleCase(longestKeyword(lower, flow.Seller.Keywords("property_type")))
	}

	f.bedrooms = atoiOr(form[model.FieldBedrooms], func() int { n, _ := parseCount(bedroomsRe, text); return n })
	f.bathrooms = atoiOr(form[model.FieldBathrooms], func() int { n, _ := parseCount(bathsRe, text); return n })
	f.sqft = atoiOr(form[model.FieldSqft], func() int {
		if m := sqftRe.FindStringSubmatch(text); m != nil {
			n, _ := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
			return n
		}
		return 0
	})

	if v, err := strconv.ParseFloat(form[model.FieldPrice], 64); err == nil {
		f.price = v
	} else if amounts := parseAmounts(text, containsAny(lower, budgetWords)); len(amounts) > 0 {
		f.price = amounts[0]
	}

	f.features = splitList(form[model.FieldFeatures])
	if len(f.features) == 0 {
		rooms := flow.Seller.Keywords("room_details")
		for _, k := range containedKeywords(lower, flow.Seller.Keywords("features")) {
			if !containsAny(k, rooms) {
				f.features = append(f.features, utils.NormalizeFeature(k))
			}
		}
	}
	return f
}

// buildListing proposes a catalog property for draft, priced against the catalog
func buildListing(draft *model.ListingDraft, catalog []model.Property, now time.Time) *model.GeneratedListing {
	facts := readListingFacts(draft)

	comparables := FindComparables(catalog, facts.propertyType, facts.bedrooms)
	pricing := AnalyzePricing(facts.price, comparables)

	estimated := facts.price <= 0
	price := facts.price
	if estimated {
		price = pricing.Comparables.AvgPrice
	}

	propertyType := firstNonEmpty(facts.propertyType, "House")
	p := model.Property{
		ID:       draft.ID,
		Title:    listingTitle(propertyType, facts),
		Price:    price,
		Location: facts.location,
		Details: model.PropertyDetails{
			Bedrooms:  facts.bedrooms,
			Bathrooms: facts.bathrooms,
			Sqft:      facts.sqft,
			Type:      propertyType,
		},
		Images:      draft.Images,
		Features:    facts.features,
		Description: firstNonEmpty(facts.description, fmt.Sprintf("A %s ready for its next owner.", strings.ToLower(propertyType))),
		Listing: &model.ListingInfo{
			DatePosted:   now.Format("2006-01-02"),
			DaysOnMarket: 0,
			Status:       "Draft",
			Agent:        listingAgent,
		},
	}
	if facts.sqft > 0 {
		p.PricePerSqft = math.Round(price / float64(facts.sqft))
	}

	confidence, suggestions := assessListing(facts, len(draft.Images))
	p.MatchScore = math.Round(confidence * 100)
	p.AIRanking = &model.AIRanking{Factors: pricingFactors(pricing)}

	recommendations := []string{
		fmt.Sprintf("Price estimation based on %d similar properties in the area", pricing.Comparables.SampleSize),
	}
	if estimated {
		recommendations = append(recommendations, "No asking price given, the comparable average was used")
	}
	if len(suggestions) == 0 {
		recommendations = append(recommendations, "Ready to publish with current information")
	}

	return &model.GeneratedListing{
		Property:        p,
		ConfidenceScore: confidence,
		Suggestions:     suggestions,
		PricingAnalysis: pricing,
		Recommendations: recommendations,
	}
}

func listingTitle(propertyType string, f listingFacts) string {
	title := propertyType
	if f.bedrooms > 0 {
		title = fmt.Sprintf("%d Bedroom %s", f.bedrooms, propertyType)
	}
	if len(f.features) > 0 {
		title += " with " + f.features[0]
	}
	if place := firstNonEmpty(f.location.Neighborhood, f.location.City); place != "" {
		title += " in " + place
	}
	return title
}

// assessListing scores how complete the listing is and says what would improve it
func assessListing(f listingFacts, images int) (float64, []string) {
	var suggestions []string
	checks := []struct {
		ok   bool
		hint string
	}{
		{f.propertyType != "", "Tell buyers what type of property this is"},
		{f.location.Address != "" || f.location.City != "", "Add the address so buyers can find the property"},
		{f.bedrooms > 0, "Add the number of bedrooms"},
		{f.bathrooms > 0, "Add the number of bathrooms"},
		{f.sqft > 0, "Add the square footage"},
		{f.price > 0, "Set an asking price"},
		{len(f.features) > 0, "Describe standout features such as a modern kitchen or outdoor space"},
		{len(f.description) >= 50, "Expand the description with the property's unique selling points"},
		{images >= 5, "Professional photography recommended for better presentation"},
	}

	known := 0
	for _, c := range checks {
		if c.ok {
			known++
		} else {
			suggestions = append(suggestions, c.hint)
		}
	}
	confidence := 0.5 + 0.45*float64(known)/float64(len(checks))
	return math.Round(confidence*100) / 100, suggestions
}

func pricingFactors(pa model.PricingAnalysis) []string {
	switch pa.MarketPosition {
	case model.MarketBelow:
		return []string{"Priced below market", "Strong value"}
	case model.MarketAbove:
		return []string{"Premium pricing"}
	default:
		return []string{"Competitive pricing"}
	}
}

func atoiOr(s string, fallback func() int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return fallback()
}
