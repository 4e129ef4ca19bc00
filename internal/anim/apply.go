package anim

// Apply issues transforms against s in order. Rotations translate to their
// center before rotating; scalings go through g.SetScaleAbsolute so they
// compose with whatever scale g has already applied.
func Apply(s Surface, g *GeometricState, transforms []InternalTransform) {
	for _, tr := range transforms {
		switch v := tr.(type) {
		case *InternalTranslation:
			s.Translate(v.By)
		case *InternalRotation:
			s.Translate(v.Center)
			s.Rotate(v.Angle)
		case *InternalScaling:
			g.SetScaleAbsolute(s, v.Scale.X, v.Scale.Y)
		default:
			panic("anim: unknown internal transform")
		}
	}
}
