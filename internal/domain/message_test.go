package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoMessageFormat(t *testing.T) {
	msg := InfoMessage{
		TrainingType: "Running",
		Duration:     1,
		Distance:     9.75,
		Speed:        9.75,
		Calories:     699.75,
	}

	assert.Equal(t,
		"Training type: Running; Duration: 1.000 h.; Distance: 9.750 km; "+
			"Avg. speed: 9.750 km/h; Calories burned: 699.750.",
		msg.GetMessage())
	assert.Equal(t, msg.GetMessage(), msg.String())
	assert.Equal(t, msg.GetMessage(), msg.Format("de"))

	assert.Equal(t,
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; "+
			"Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		msg.Format(LocaleRU))
}

func TestInfoMessageRoundsToThreeDecimals(t *testing.T) {
	msg := InfoMessage{TrainingType: "Swimming", Duration: 1.23456, Distance: 0.9936, Speed: 2, Calories: 1.0005}
	assert.Equal(t,
		"Training type: Swimming; Duration: 1.235 h.; Distance: 0.994 km; "+
			"Avg. speed: 2.000 km/h; Calories burned: 1.000.",
		msg.GetMessage())
}

func TestParseLocale(t *testing.T) {
	l, err := ParseLocale("")
	require.NoError(t, err)
	assert.Equal(t, LocaleEN, l)

	l, err = ParseLocale("ru")
	require.NoError(t, err)
	assert.Equal(t, LocaleRU, l)

	_, err = ParseLocale("fr")
	assert.Error(t, err)
}
