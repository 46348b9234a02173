package geo

import "github.com/attractions-service/internal/domain"

// OrderByProximity строит порядок обхода жадным алгоритмом ближайшего соседа:
// из текущей позиции (начиная со start) выбирается ближайшая непосещённая
// запись, позиция переносится в неё, и так до исчерпания входа.
//
// Сложность O(n²) - осознанный выбор: n здесь мал (личный список или
// ограниченная выборка), пространственный индекс не нужен. При равных
// расстояниях побеждает более ранняя запись входного среза; вызывающим,
// которым нужен стабильный порядок, следует предварительно отсортировать
// вход по вторичному ключу (например, ID).
func OrderByProximity(start domain.Point, attractions []*domain.Attraction) []*domain.Attraction {
	if len(attractions) == 0 {
		return []*domain.Attraction{}
	}

	visited := make([]bool, len(attractions))
	ordered := make([]*domain.Attraction, 0, len(attractions))
	current := start

	for remaining := len(attractions); remaining > 0; remaining-- {
		best := -1
		bestDist := 0.0

		for i, a := range attractions {
			if visited[i] {
				continue
			}
			d := DistanceKm(current, a.Location())
			if best == -1 || d < bestDist {
				best = i
				bestDist = d
			}
		}

		visited[best] = true
		ordered = append(ordered, attractions[best])
		current = attractions[best].Location()
	}

	return ordered
}
