package service

import "github.com/RKBattleSLoth/DreamWeaver/internal/mocks"

// The service mocks live in internal/mocks so the handler tests can share
// them. Assert here that they keep tracking the service interfaces.
var (
	_ AuthService         = (*mocks.MockAuthService)(nil)
	_ ChildProfileService = (*mocks.MockChildProfileService)(nil)
	_ StoryService        = (*mocks.MockStoryService)(nil)
	_ GenerationService   = (*mocks.MockGenerationService)(nil)
)
