package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wahyuabrory/fashion-data-ingestion/domain"
)

// Mocks
type MockPageFetcher struct {
	mock.Mock
}

func (m *MockPageFetcher) Fetch(url string) (string, error) {
	args := m.Called(url)
	return args.String(0), args.Error(1)
}

const listingPage = `
<html>
	<body>
		<div class="collection-card">
			<div class="product-details">
				<h3 class="product-title">T-shirt 2</h3>
				<span class="price">$102.15</span>
				<p style="font-size: 14px;">Rating: ⭐ 3.9 / 5</p>
				<p style="font-size: 14px;">3 Colors</p>
				<p style="font-size: 14px;">Size: M</p>
				<p style="font-size: 14px;">Gender: Women</p>
			</div>
		</div>
		<div class="collection-card">
			<div class="product-details">
				<h3 class="product-title">Hoodie 3</h3>
				<p class="price">$496.88</p>
				<p style="font-size: 14px;">Rating: ⭐ 4.8 / 5</p>
				<p style="font-size: 14px;">3 Colors</p>
				<p style="font-size: 14px;">Size: L</p>
				<p style="font-size: 14px;">Gender: Unisex</p>
			</div>
		</div>
	</body>
</html>`

const sparsePage = `
<html>
	<body>
		<div class="collection-card">
			<div class="product-details">
				<span class="price">$12.00</span>
			</div>
		</div>
	</body>
</html>`

const emptyPage = `<html><body><p>Nothing here</p></body></html>`

func newTestExtractor(fetcher PageFetcher, opts ...ExtractorOption) *ExtractorService {
	base := []ExtractorOption{
		WithPageFetcher(fetcher),
		WithBaseURL("http://catalog.test/"),
		WithPageDelay(0),
	}
	return NewExtractorService(append(base, opts...)...)
}

func TestExtract_ParsesProductCards(t *testing.T) {
	fetcher := new(MockPageFetcher)
	fetcher.On("Fetch", "http://catalog.test/").Return(listingPage, nil)

	s := newTestExtractor(fetcher, WithMaxPages(1))
	raw, err := s.Extract()

	assert.NoError(t, err)
	assert.Len(t, raw, 2)

	first := raw[0]
	assert.Equal(t, "T-shirt 2", first.Title)
	assert.Equal(t, "$102.15", first.Price)
	assert.Equal(t, "⭐ 3.9 / 5", first.Rating)
	assert.Equal(t, "3 Colors", first.Colors)
	assert.Equal(t, "Size: M", first.Size)
	assert.Equal(t, "Gender: Women", first.Gender)
	assert.False(t, first.ScrapedAt.IsZero())

	// p.price fallback
	assert.Equal(t, "$496.88", raw[1].Price)

	fetcher.AssertExpectations(t)
}

func TestExtract_KeepsPlaceholdersForMissingFields(t *testing.T) {
	fetcher := new(MockPageFetcher)
	fetcher.On("Fetch", "http://catalog.test/").Return(sparsePage, nil)

	s := newTestExtractor(fetcher, WithMaxPages(1))
	raw, err := s.Extract()

	assert.NoError(t, err)
	assert.Len(t, raw, 1)
	assert.Equal(t, domain.UnknownTitle, raw[0].Title)
	assert.Equal(t, "$12.00", raw[0].Price)
	assert.Equal(t, domain.InvalidRating, raw[0].Rating)
	assert.Equal(t, "0 Colors", raw[0].Colors)
	assert.Equal(t, "Size: N/A", raw[0].Size)
	assert.Equal(t, "Gender: N/A", raw[0].Gender)
}

func TestExtract_SkipsFailedPage(t *testing.T) {
	fetcher := new(MockPageFetcher)
	fetcher.On("Fetch", "http://catalog.test/").Return("", errors.New("boom"))
	fetcher.On("Fetch", "http://catalog.test/page2").Return(listingPage, nil)

	s := newTestExtractor(fetcher, WithMaxPages(2))
	raw, err := s.Extract()

	assert.NoError(t, err)
	assert.Len(t, raw, 2)
	fetcher.AssertExpectations(t)
}

func TestExtract_TotalFailureIsFatal(t *testing.T) {
	fetcher := new(MockPageFetcher)
	fetcher.On("Fetch", mock.Anything).Return("", errors.New("connection refused"))

	s := newTestExtractor(fetcher, WithMaxPages(3))
	raw, err := s.Extract()

	assert.Error(t, err)
	assert.Nil(t, raw)
	assert.Contains(t, err.Error(), "no products")
	fetcher.AssertNumberOfCalls(t, "Fetch", 3)
}

func TestExtract_StopsAtTarget(t *testing.T) {
	fetcher := new(MockPageFetcher)
	fetcher.On("Fetch", "http://catalog.test/").Return(listingPage, nil)

	s := newTestExtractor(fetcher, WithMaxPages(10), WithTarget(2))
	raw, err := s.Extract()

	assert.NoError(t, err)
	assert.Len(t, raw, 2)
	fetcher.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestExtract_StopsAfterConsecutiveEmptyPages(t *testing.T) {
	fetcher := new(MockPageFetcher)
	fetcher.On("Fetch", "http://catalog.test/").Return(listingPage, nil)
	fetcher.On("Fetch", "http://catalog.test/page2").Return(emptyPage, nil)
	fetcher.On("Fetch", "http://catalog.test/page3").Return(emptyPage, nil)

	s := newTestExtractor(fetcher, WithMaxPages(10))
	raw, err := s.Extract()

	assert.NoError(t, err)
	assert.Len(t, raw, 2)
	// page3 was only probed; page4 was never requested
	fetcher.AssertNumberOfCalls(t, "Fetch", 3)
}

func TestPageURL(t *testing.T) {
	s := newTestExtractor(nil)
	assert.Equal(t, "http://catalog.test/", s.pageURL(1))
	assert.Equal(t, "http://catalog.test/page2", s.pageURL(2))
	assert.Equal(t, "http://catalog.test/page50", s.pageURL(50))
}
