package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "trivia",
			objectType:  "categories",
			identifier:  "all",
			expectedKey: "showcase:trivia:categories:all",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "trivia",
			objectType:  "categories",
			identifier:  "all",
			paramsKey:   []string{},
			expectedKey: "showcase:trivia:categories:all",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "booking",
			objectType:  "venue",
			identifier:  "1",
			paramsKey:   []string{"shows", "upcoming"},
			expectedKey: "showcase:booking:venue:1:shows_upcoming",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}
