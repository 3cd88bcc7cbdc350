package history_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gzclp/internal/gzclp/history"
)

func TestRecordChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockhistoryStore(ctrl)
	definitions := NewMockdefinitionsProvider(ctrl)
	recorder := history.NewRecorder(store, definitions)

	change := testChange("w1", time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC))

	definitions.EXPECT().
		ListDefinitions(gomock.Any()).
		Return(testDefinitions, nil)
	store.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry history.Entry) (bool, error) {
			assert.Equal(t, change.ProgressionKey, entry.ProgressionKey)
			assert.Equal(t, "Squat (Barbell)", entry.ExerciseName)
			assert.Equal(t, change.WorkoutID, entry.WorkoutID)
			assert.False(t, entry.RecordedAt.IsZero())
			return true, nil
		})

	require.NoError(t, recorder.RecordChange(context.Background(), change))
}

func TestRecordChange_AlreadyRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockhistoryStore(ctrl)
	definitions := NewMockdefinitionsProvider(ctrl)
	recorder := history.NewRecorder(store, definitions)

	definitions.EXPECT().ListDefinitions(gomock.Any()).Return(testDefinitions, nil)
	store.EXPECT().Add(gomock.Any(), gomock.Any()).Return(false, nil)

	change := testChange("w1", time.Now())
	require.NoError(t, recorder.RecordChange(context.Background(), change))
}

func TestRecordChange_DefinitionsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockhistoryStore(ctrl)
	definitions := NewMockdefinitionsProvider(ctrl)
	recorder := history.NewRecorder(store, definitions)

	definitions.EXPECT().
		ListDefinitions(gomock.Any()).
		Return(nil, errors.New("db gone"))
	store.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry history.Entry) (bool, error) {
			// recorded anyway, just without the exercise name
			assert.Empty(t, entry.ExerciseName)
			return true, nil
		})

	change := testChange("w1", time.Now())
	require.NoError(t, recorder.RecordChange(context.Background(), change))
}

func TestRecordChange_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockhistoryStore(ctrl)
	definitions := NewMockdefinitionsProvider(ctrl)
	recorder := history.NewRecorder(store, definitions)

	definitions.EXPECT().ListDefinitions(gomock.Any()).Return(testDefinitions, nil)
	store.EXPECT().Add(gomock.Any(), gomock.Any()).Return(false, errors.New("insert failed"))

	change := testChange("w1", time.Now())
	err := recorder.RecordChange(context.Background(), change)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed")
}
