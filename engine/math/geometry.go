package math

/**
 * @brief An axis-aligned bounding box defined by its minimum and
 * maximum corner vectors.
 */
type BBox struct {
	/** @brief The minimum corner of the box. */
	Mins Vec3 `json:"mins"`
	/** @brief The maximum corner of the box. */
	Maxs Vec3 `json:"maxs"`
}

/**
 * @brief Creates and returns a new bounding box from the supplied corners.
 *
 * @param mins The minimum corner.
 * @param maxs The maximum corner.
 * @return A new bounding box.
 */
func NewBBox(mins, maxs Vec3) BBox {
	return BBox{Mins: mins, Maxs: maxs}
}

/**
 * @brief Returns the center point of the box, mins + (maxs - mins) / 2.
 */
func (b BBox) Center() Vec3 {
	return b.Maxs.Sub(b.Mins).MulScalar(0.5).Add(b.Mins)
}

/**
 * @brief Returns the size of the box along each axis.
 */
func (b BBox) Extents() Vec3 {
	return b.Maxs.Sub(b.Mins)
}

/**
 * @brief Returns true if the point lies inside the box (inclusive).
 */
func (b BBox) Contains(point Vec3) bool {
	return point.X >= b.Mins.X && point.X <= b.Maxs.X &&
		point.Y >= b.Mins.Y && point.Y <= b.Maxs.Y &&
		point.Z >= b.Mins.Z && point.Z <= b.Maxs.Z
}

/**
 * @brief Compares two boxes corner by corner within tolerance.
 */
func (b BBox) Compare(other BBox, tolerance float32) bool {
	return b.Mins.Compare(other.Mins, tolerance) && b.Maxs.Compare(other.Maxs, tolerance)
}
